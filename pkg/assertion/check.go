package assertion

import (
	"runtime"

	"digital.vasic.fluent/pkg/logging"
)

// Check is the single evaluation point for every assertion.
// When passed is false it renders f and aborts the calling test
// goroutine. The predicate is evaluated exactly once, by the
// caller.
func Check(t TestingT, cfg Config, passed bool, f Failure) {
	t.Helper()

	logger := cfg.logger()
	if passed {
		logger.Debug("assertion passed",
			logging.LabelField(f.Label), logging.PassedField(true),
		)
		return
	}

	fields := []logging.Field{logging.LabelField(f.Label), logging.PassedField(false)}
	if named, ok := t.(interface{ Name() string }); ok {
		fields = append(fields, logging.TestField(named.Name()))
	}
	logger.Error("assertion failed", fields...)

	t.Fatal(f.Render(cfg))

	// A TestingT whose Fatal returns must still end the chain.
	runtime.Goexit()
}
