// Package fluent provides chainable assertions for Go tests.
//
// A chain starts at an entry point that captures the test handle
// and the value under test:
//
//	fluent.That(t, got).Equals(42)
//	fluent.ThatString(t, name).StartsWith("svc-").And().EndsWith("-prod")
//	fluent.ThatResult(t, fluent.ResultOf(os.Open(path))).IsOk()
//
// Every assertion either returns a container for further chaining
// or fails the test immediately through t.Fatal. A failed assertion
// never returns to the chain.
//
// Capabilities are grouped by category. That yields the base
// container with equality and extraction; ThatString, ThatBool,
// ThatSlice, ThatSeq, ThatOptional, ThatResult, ThatPath, ThatFile,
// ThatJSON and ThatYAML yield containers that add the category's
// assertions. AsString, AsBool and AsSlice convert a base container
// into its category, which is how chains continue after Extract or
// AndValue. Assertions that narrow a value, like IsSome or IsOk,
// return a container that only exposes the narrowed payload.
//
// Chains use assertion.DefaultConfig unless the test handle was
// wrapped with assertion.Configure:
//
//	ft := assertion.Configure(t, assertion.WithColor(true))
//	fluent.That(ft, got).Equals(want)
package fluent
