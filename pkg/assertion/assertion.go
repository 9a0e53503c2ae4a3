// Package assertion is the evaluation core shared by every fluent
// assertion. It turns a predicate outcome into either a silent
// return or a rendered failure that aborts the running test.
package assertion

// TestingT is the subset of testing.TB used to signal a failed
// assertion. *testing.T and *testing.B satisfy it.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// Failure describes a single unmet assertion.
type Failure struct {
	// Label is the unmet condition, phrased to follow
	// "expected value", e.g. "to contain" or "to be Some".
	Label string

	// Actual is the value under test.
	Actual any

	// Expected is the value the assertion compared against.
	// It is only rendered when HasExpected is set.
	Expected    any
	HasExpected bool

	// Details carries supplementary context such as the
	// missing and extra items of a multiset comparison.
	Details []Detail

	// ShowDiff requests a structural diff between Expected
	// and Actual.
	ShowDiff bool
}

// Detail is a labelled piece of supplementary context.
type Detail struct {
	Label string
	Value any
}

// Verbatim is rendered as-is instead of as a Go value.
type Verbatim string

// NoExpected builds a Failure that only reports the actual
// value and the unmet condition.
func NoExpected(label string, actual any) Failure {
	return Failure{Label: label, Actual: actual}
}

// WithExpected builds a Failure that reports both the actual
// and the expected value.
func WithExpected(label string, actual, expected any) Failure {
	return Failure{
		Label:       label,
		Actual:      actual,
		Expected:    expected,
		HasExpected: true,
	}
}

// With returns a copy of f with an additional detail.
func (f Failure) With(label string, value any) Failure {
	details := make([]Detail, len(f.Details), len(f.Details)+1)
	copy(details, f.Details)
	f.Details = append(details, Detail{Label: label, Value: value})
	return f
}
