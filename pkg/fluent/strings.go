package fluent

import (
	"strings"

	"digital.vasic.fluent/pkg/assertion"
)

// Matcher is a pattern a string can be matched against.
// *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// StringAsserter adds string assertions to a value whose type is
// a string.
type StringAsserter[S ~string] struct {
	*Asserter[S]
}

// ThatString starts an assertion chain for a string.
func ThatString[S ~string](t assertion.TestingT, value S) *StringAsserter[S] {
	return &StringAsserter[S]{newAsserter(t, value)}
}

// AsString continues a chain with string assertions.
func AsString[S ~string](a *Asserter[S]) *StringAsserter[S] {
	return &StringAsserter[S]{a}
}

func (s *StringAsserter[S]) And() *StringAsserter[S] {
	return s
}

// Contains asserts that the value contains substr.
func (s *StringAsserter[S]) Contains(substr string) *StringAsserter[S] {
	s.t.Helper()
	v := string(s.value)
	s.check(strings.Contains(v, substr), assertion.WithExpected("to contain", v, substr))
	return s
}

// StartsWith asserts that the value begins with prefix.
func (s *StringAsserter[S]) StartsWith(prefix string) *StringAsserter[S] {
	s.t.Helper()
	v := string(s.value)
	s.check(strings.HasPrefix(v, prefix), assertion.WithExpected("to start with", v, prefix))
	return s
}

// EndsWith asserts that the value ends with suffix.
func (s *StringAsserter[S]) EndsWith(suffix string) *StringAsserter[S] {
	s.t.Helper()
	v := string(s.value)
	s.check(strings.HasSuffix(v, suffix), assertion.WithExpected("to end with", v, suffix))
	return s
}

// Matches asserts that m matches the value.
func (s *StringAsserter[S]) Matches(m Matcher) *StringAsserter[S] {
	s.t.Helper()
	v := string(s.value)
	s.check(m.MatchString(v), assertion.WithExpected(
		"to be matched by", v, assertion.Verbatim(m.String()),
	))
	return s
}
