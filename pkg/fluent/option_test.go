package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digital.vasic.fluent/pkg/assertion"
)

func TestOptional(t *testing.T) {
	v, ok := Some(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = None[int]().Get()
	assert.False(t, ok)

	m := map[string]int{"a": 1}
	b, found := m["b"]
	_, ok = OptionalOf(b, found).Get()
	assert.False(t, ok)

	n := 5
	v, ok = OptionalFromPointer(&n).Get()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = OptionalFromPointer[int](nil).Get()
	assert.False(t, ok)
}

func TestOptionAsserter(t *testing.T) {
	ThatOptional(t, Some("x")).IsSome().AndValue().Equals("x")
	ThatOptional(t, None[string]()).IsNone()
	ThatOptional(t, Some(1)).Is(Some(1)).And().IsNot(None[int]())

	m := map[string]int{"a": 1}
	a, found := m["a"]
	ThatOptional(t, OptionalOf(a, found)).IsSome().AndValue().Equals(1)
}

func TestOptionAsserter_Failures(t *testing.T) {
	msg := requireFail(t, func(t assertion.TestingT) {
		ThatOptional(t, None[int]()).IsSome()
	})
	assert.Contains(t, msg, "expected value to be Some")
	assert.Contains(t, msg, "actual: None")

	msg = requireFail(t, func(t assertion.TestingT) {
		ThatOptional(t, Some(7)).IsNone()
	})
	assert.Contains(t, msg, "expected value to be None")
	assert.Contains(t, msg, "actual: Some(7)")

	msg = requireFail(t, func(t assertion.TestingT) {
		ThatOptional(t, Some(7)).IsSome().AndValue().Equals(8)
	})
	assert.Contains(t, msg, "expected value to equal")
}
