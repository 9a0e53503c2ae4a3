package fluent

import "digital.vasic.fluent/pkg/assertion"

// Optional is a value that may be absent.
type Optional[V any] struct {
	value   V
	present bool
}

// Some returns a present Optional holding v.
func Some[V any](v V) Optional[V] {
	return Optional[V]{value: v, present: true}
}

// None returns an absent Optional.
func None[V any]() Optional[V] {
	return Optional[V]{}
}

// OptionalOf adapts the comma-ok idiom:
//
//	v, ok := m[key]
//	fluent.ThatOptional(t, fluent.OptionalOf(v, ok))
func OptionalOf[V any](v V, ok bool) Optional[V] {
	if !ok {
		return None[V]()
	}
	return Some(v)
}

// OptionalFromPointer treats a nil pointer as absent.
func OptionalFromPointer[V any](p *V) Optional[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

func (o Optional[V]) render() assertion.Verbatim {
	if !o.present {
		return "None"
	}
	return assertion.Verbatim("Some(" + assertion.Sprint(o.value) + ")")
}

// OptionAsserter adds presence assertions to an Optional.
type OptionAsserter[V any] struct {
	*Asserter[Optional[V]]
}

// ThatOptional starts an assertion chain for an Optional.
func ThatOptional[V any](t assertion.TestingT, value Optional[V]) *OptionAsserter[V] {
	return &OptionAsserter[V]{newAsserter(t, value)}
}

func (o *OptionAsserter[V]) And() *OptionAsserter[V] {
	return o
}

// IsSome asserts that the value is present and narrows the chain
// to it.
func (o *OptionAsserter[V]) IsSome() *SomeAsserter[V] {
	o.t.Helper()
	o.check(o.value.present, assertion.NoExpected("to be Some", o.value.render()))
	return &SomeAsserter[V]{payload: derive(o.Asserter, o.value.value)}
}

// IsNone asserts that the value is absent.
func (o *OptionAsserter[V]) IsNone() {
	o.t.Helper()
	o.check(!o.value.present, assertion.NoExpected("to be None", o.value.render()))
}

// SomeAsserter holds the payload of an Optional confirmed to be
// present.
type SomeAsserter[V any] struct {
	payload *Asserter[V]
}

// AndValue continues the chain with the present value.
func (s *SomeAsserter[V]) AndValue() *Asserter[V] {
	return s.payload
}
