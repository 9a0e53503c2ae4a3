package logging

// NullLogger drops every outcome. Chains fall back to it when no
// Logger is configured, so an unconfigured assertion costs one
// interface call.
type NullLogger struct{}

func (NullLogger) Info(_ string, _ ...Field)  {}
func (NullLogger) Warn(_ string, _ ...Field)  {}
func (NullLogger) Error(_ string, _ ...Field) {}
func (NullLogger) Debug(_ string, _ ...Field) {}

func (NullLogger) WithFields(_ ...Field) Logger {
	return NullLogger{}
}

func (NullLogger) Close() error { return nil }
