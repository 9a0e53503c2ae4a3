package fluent

import (
	"errors"
	"strings"

	"digital.vasic.fluent/pkg/assertion"
)

// Result is either a success value or an error.
type Result[V any] struct {
	value V
	err   error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[V any](v V) Result[V] {
	return Result[V]{value: v, ok: true}
}

// Err returns a failed Result holding err.
func Err[V any](err error) Result[V] {
	return Result[V]{err: err}
}

// ResultOf adapts a (value, error) return:
//
//	fluent.ThatResult(t, fluent.ResultOf(strconv.Atoi(s))).IsOk()
func ResultOf[V any](v V, err error) Result[V] {
	if err != nil {
		return Err[V](err)
	}
	return Ok(v)
}

// Get returns the held value and error.
func (r Result[V]) Get() (V, error) {
	return r.value, r.err
}

func (r Result[V]) render() assertion.Verbatim {
	if r.ok {
		return assertion.Verbatim("Ok(" + assertion.Sprint(r.value) + ")")
	}
	return assertion.Verbatim("Err(" + assertion.Sprint(r.err) + ")")
}

// ResultAsserter adds outcome assertions to a Result.
type ResultAsserter[V any] struct {
	*Asserter[Result[V]]
}

// ThatResult starts an assertion chain for a Result.
func ThatResult[V any](t assertion.TestingT, value Result[V]) *ResultAsserter[V] {
	return &ResultAsserter[V]{newAsserter(t, value)}
}

func (r *ResultAsserter[V]) And() *ResultAsserter[V] {
	return r
}

// IsOk asserts that the Result succeeded and narrows the chain to
// its value.
func (r *ResultAsserter[V]) IsOk() *OkAsserter[V] {
	r.t.Helper()
	r.check(r.value.ok, assertion.NoExpected("to be Ok", r.value.render()))
	return &OkAsserter[V]{payload: derive(r.Asserter, r.value.value)}
}

// IsErr asserts that the Result failed and narrows the chain to
// its error.
func (r *ResultAsserter[V]) IsErr() *ErrAsserter {
	r.t.Helper()
	r.check(!r.value.ok, assertion.NoExpected("to be Err", r.value.render()))
	return &ErrAsserter{payload: derive(r.Asserter, r.value.err)}
}

// OkAsserter holds the value of a Result confirmed to be Ok.
type OkAsserter[V any] struct {
	payload *Asserter[V]
}

// AndValue continues the chain with the success value.
func (o *OkAsserter[V]) AndValue() *Asserter[V] {
	return o.payload
}

// ErrAsserter holds the error of a Result confirmed to be Err.
type ErrAsserter struct {
	payload *Asserter[error]
}

// AndError continues the chain with the error.
func (e *ErrAsserter) AndError() *Asserter[error] {
	return e.payload
}

// Wraps asserts that target is in the error's chain, as reported
// by errors.Is.
func (e *ErrAsserter) Wraps(target error) *ErrAsserter {
	p := e.payload
	p.t.Helper()
	p.check(errors.Is(p.value, target), assertion.WithExpected("to wrap", p.value, target))
	return e
}

// HasMessage asserts that the error message contains substr.
func (e *ErrAsserter) HasMessage(substr string) *ErrAsserter {
	p := e.payload
	p.t.Helper()
	msg := "<nil>"
	if p.value != nil {
		msg = p.value.Error()
	}
	p.check(strings.Contains(msg, substr), assertion.WithExpected(
		"to have a message containing", p.value, substr,
	))
	return e
}
