package fluent

import (
	"errors"
	"fmt"
	"reflect"

	"digital.vasic.fluent/pkg/assertion"
)

// Asserter holds a value under test together with the test
// handle and configuration used to report failures.
type Asserter[T any] struct {
	t     assertion.TestingT
	cfg   assertion.Config
	value T
}

// That starts an assertion chain for value.
func That[T any](t assertion.TestingT, value T) *Asserter[T] {
	return newAsserter(t, value)
}

func newAsserter[T any](t assertion.TestingT, value T) *Asserter[T] {
	inner, cfg := assertion.Resolve(t)
	return &Asserter[T]{t: inner, cfg: cfg, value: value}
}

// derive moves the chain to a new value, keeping the test handle
// and configuration.
func derive[U, T any](a *Asserter[T], value U) *Asserter[U] {
	return &Asserter[U]{t: a.t, cfg: a.cfg, value: value}
}

func (a *Asserter[T]) check(passed bool, f assertion.Failure) {
	a.t.Helper()
	assertion.Check(a.t, a.cfg, passed, f)
}

// And returns the container unchanged. It only exists to make
// chains read naturally.
func (a *Asserter[T]) And() *Asserter[T] {
	return a
}

// Value ends the chain and returns the value under test.
func (a *Asserter[T]) Value() T {
	return a.value
}

// ToString continues the chain with the value's default
// formatting.
func (a *Asserter[T]) ToString() *StringAsserter[string] {
	return &StringAsserter[string]{derive(a, fmt.Sprint(a.value))}
}

// Extract continues the chain with fn applied to the value under
// test. fn must not fail; use a Result or Optional for
// extractions that can.
func Extract[T, U any](a *Asserter[T], fn func(T) U) *Asserter[U] {
	return derive(a, fn(a.value))
}

// Equals asserts that the value equals expected after converting
// expected into the value's type. Values of incompatible types
// fail as a conversion error; a numeric expected value that the
// type cannot represent is simply unequal.
//
// An untyped constant passed as expected arrives as int, float64
// or string. For float32 values use Is, where the constant
// converts at compile time:
//
//	fluent.That(t, float32(0.1)).Is(0.1)
func (a *Asserter[T]) Equals(expected any) *Asserter[T] {
	a.t.Helper()
	want, err := assertion.Convert[T](expected)
	if errors.Is(err, assertion.ErrIncompatible) {
		a.check(false, conversionFailure[T](a.value, expected, err))
		return a
	}
	if err != nil {
		a.check(false, equalityFailure("to equal", a.value, expected).With("cause", err))
		return a
	}
	a.check(assertion.Equal(a.value, want), equalityFailure("to equal", a.value, want))
	return a
}

// NotEquals asserts that the value differs from expected after
// conversion. Incompatible types fail as a conversion error.
func (a *Asserter[T]) NotEquals(expected any) *Asserter[T] {
	a.t.Helper()
	want, err := assertion.Convert[T](expected)
	if errors.Is(err, assertion.ErrIncompatible) {
		a.check(false, conversionFailure[T](a.value, expected, err))
		return a
	}
	if err != nil {
		return a
	}
	a.check(!assertion.Equal(a.value, want), assertion.WithExpected("to not equal", a.value, want))
	return a
}

// Is asserts that the value equals expected of the same type.
func (a *Asserter[T]) Is(expected T) *Asserter[T] {
	a.t.Helper()
	a.check(assertion.Equal(a.value, expected), equalityFailure("to equal", a.value, expected))
	return a
}

// IsNot asserts that the value differs from expected of the same
// type.
func (a *Asserter[T]) IsNot(expected T) *Asserter[T] {
	a.t.Helper()
	a.check(!assertion.Equal(a.value, expected), assertion.WithExpected("to not equal", a.value, expected))
	return a
}

// TryIntoEquals is Equals, except that any failed conversion of
// expected, including an unrepresentable number, fails the
// assertion as a conversion error.
func (a *Asserter[T]) TryIntoEquals(expected any) *Asserter[T] {
	a.t.Helper()
	want, err := assertion.Convert[T](expected)
	if err != nil {
		a.check(false, conversionFailure[T](a.value, expected, err))
		return a
	}
	a.check(assertion.Equal(a.value, want), equalityFailure("to equal", a.value, want))
	return a
}

// TryIntoNotEquals is NotEquals, except that any failed
// conversion of expected fails the assertion.
func (a *Asserter[T]) TryIntoNotEquals(expected any) *Asserter[T] {
	a.t.Helper()
	want, err := assertion.Convert[T](expected)
	if err != nil {
		a.check(false, conversionFailure[T](a.value, expected, err))
		return a
	}
	a.check(!assertion.Equal(a.value, want), assertion.WithExpected("to not equal", a.value, want))
	return a
}

func equalityFailure(label string, actual, expected any) assertion.Failure {
	f := assertion.WithExpected(label, actual, expected)
	f.ShowDiff = true
	return f
}

func conversionFailure[T any](actual, expected any, cause error) assertion.Failure {
	label := fmt.Sprintf(
		"conversion of expected value to %s to succeed", reflect.TypeFor[T](),
	)
	return assertion.WithExpected(label, actual, expected).With("cause", cause)
}
