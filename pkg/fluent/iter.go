package fluent

import (
	"fmt"
	"iter"
	"slices"

	"digital.vasic.fluent/pkg/assertion"
)

// SliceAsserter adds sequence assertions. Lazy sequences are
// materialized when the chain starts.
type SliceAsserter[E any] struct {
	*Asserter[[]E]
}

// ThatSlice starts an assertion chain for a slice.
func ThatSlice[S ~[]E, E any](t assertion.TestingT, value S) *SliceAsserter[E] {
	return &SliceAsserter[E]{newAsserter(t, []E(value))}
}

// ThatSeq drains seq and starts an assertion chain for its items.
func ThatSeq[E any](t assertion.TestingT, seq iter.Seq[E]) *SliceAsserter[E] {
	return &SliceAsserter[E]{newAsserter(t, slices.Collect(seq))}
}

// AsSlice continues a chain with sequence assertions.
func AsSlice[S ~[]E, E any](a *Asserter[S]) *SliceAsserter[E] {
	return &SliceAsserter[E]{derive(a, []E(a.value))}
}

func (s *SliceAsserter[E]) And() *SliceAsserter[E] {
	return s
}

// Size continues the chain with the number of items.
func (s *SliceAsserter[E]) Size() *Asserter[int] {
	return derive(s.Asserter, len(s.value))
}

// IsEmpty asserts that there are no items.
func (s *SliceAsserter[E]) IsEmpty() *SliceAsserter[E] {
	s.t.Helper()
	s.check(len(s.value) == 0, assertion.NoExpected("to be empty", s.value))
	return s
}

// IsNotEmpty asserts that there is at least one item.
func (s *SliceAsserter[E]) IsNotEmpty() *SliceAsserter[E] {
	s.t.Helper()
	s.check(len(s.value) > 0, assertion.NoExpected("to not be empty", s.value))
	return s
}

// First continues the chain with the item at index 0.
func (s *SliceAsserter[E]) First() *Asserter[E] {
	s.t.Helper()
	return s.item(0, "to have a first item")
}

// Second continues the chain with the item at index 1.
func (s *SliceAsserter[E]) Second() *Asserter[E] {
	s.t.Helper()
	return s.item(1, "to have a second item")
}

// Third continues the chain with the item at index 2.
func (s *SliceAsserter[E]) Third() *Asserter[E] {
	s.t.Helper()
	return s.item(2, "to have a third item")
}

// Nth continues the chain with the item at index k.
func (s *SliceAsserter[E]) Nth(k int) *Asserter[E] {
	s.t.Helper()
	return s.item(k, fmt.Sprintf("to have an item at index %d", k))
}

func (s *SliceAsserter[E]) item(k int, label string) *Asserter[E] {
	s.t.Helper()
	s.check(k >= 0 && k < len(s.value),
		assertion.NoExpected(label, s.value).With("length", len(s.value)),
	)
	return derive(s.Asserter, s.value[k])
}

// Contains asserts that some item equals item.
func (s *SliceAsserter[E]) Contains(item E) *SliceAsserter[E] {
	s.t.Helper()
	s.check(indexOf(s.value, item) >= 0, assertion.WithExpected("to contain", s.value, item))
	return s
}

// ContainsAll asserts that every one of items equals some item of
// the sequence. One item may satisfy several expected items.
func (s *SliceAsserter[E]) ContainsAll(items ...E) *SliceAsserter[E] {
	s.t.Helper()
	var missing []E
	for _, want := range items {
		if indexOf(s.value, want) < 0 {
			missing = append(missing, want)
		}
	}
	s.check(len(missing) == 0,
		assertion.WithExpected("to contain all of", s.value, items).With("missing", missing),
	)
	return s
}

// ContainsOnly asserts that the sequence and items hold the same
// elements with the same multiplicities, in any order.
func (s *SliceAsserter[E]) ContainsOnly(items ...E) *SliceAsserter[E] {
	s.t.Helper()
	missing, extra := matchMultiset(s.value, items)

	f := assertion.WithExpected("to contain only", s.value, items)
	if len(missing) > 0 {
		f = f.With("missing", missing)
	}
	if len(extra) > 0 {
		f = f.With("extra", extra)
	}
	s.check(len(missing) == 0 && len(extra) == 0, f)
	return s
}

// AllMatch asserts that pred holds for every item. It holds for
// an empty sequence.
func (s *SliceAsserter[E]) AllMatch(pred func(E) bool) *SliceAsserter[E] {
	s.t.Helper()
	i := slices.IndexFunc(s.value, func(e E) bool { return !pred(e) })
	f := assertion.NoExpected("to have all items match the predicate", s.value)
	if i >= 0 {
		f = f.With("first mismatch", indexed(i, s.value[i]))
	}
	s.check(i < 0, f)
	return s
}

// AnyMatch asserts that pred holds for at least one item. It
// never holds for an empty sequence.
func (s *SliceAsserter[E]) AnyMatch(pred func(E) bool) *SliceAsserter[E] {
	s.t.Helper()
	s.check(slices.ContainsFunc(s.value, pred),
		assertion.NoExpected("to have at least one item match the predicate", s.value),
	)
	return s
}

// NoneMatch asserts that pred holds for no item. It holds for an
// empty sequence.
func (s *SliceAsserter[E]) NoneMatch(pred func(E) bool) *SliceAsserter[E] {
	s.t.Helper()
	i := slices.IndexFunc(s.value, pred)
	f := assertion.NoExpected("to have no item match the predicate", s.value)
	if i >= 0 {
		f = f.With("first match", indexed(i, s.value[i]))
	}
	s.check(i < 0, f)
	return s
}

func indexOf[E any](items []E, want E) int {
	return slices.IndexFunc(items, func(e E) bool {
		return assertion.Equal(e, want)
	})
}

func indexed(i int, v any) assertion.Verbatim {
	return assertion.Verbatim(fmt.Sprintf("index %d: %s", i, assertion.Sprint(v)))
}
