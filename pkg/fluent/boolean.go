package fluent

import "digital.vasic.fluent/pkg/assertion"

// BoolAsserter adds boolean assertions to a value whose type is a
// bool.
type BoolAsserter[B ~bool] struct {
	*Asserter[B]
}

// ThatBool starts an assertion chain for a boolean.
func ThatBool[B ~bool](t assertion.TestingT, value B) *BoolAsserter[B] {
	return &BoolAsserter[B]{newAsserter(t, value)}
}

// AsBool continues a chain with boolean assertions.
func AsBool[B ~bool](a *Asserter[B]) *BoolAsserter[B] {
	return &BoolAsserter[B]{a}
}

func (b *BoolAsserter[B]) And() *BoolAsserter[B] {
	return b
}

// IsTrue asserts that the value is true.
func (b *BoolAsserter[B]) IsTrue() *BoolAsserter[B] {
	b.t.Helper()
	b.check(bool(b.value), assertion.NoExpected("to be true", bool(b.value)))
	return b
}

// IsFalse asserts that the value is false.
func (b *BoolAsserter[B]) IsFalse() *BoolAsserter[B] {
	b.t.Helper()
	b.check(!bool(b.value), assertion.NoExpected("to be false", bool(b.value)))
	return b
}
