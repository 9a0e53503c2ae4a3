package assertion

// Configured pairs a TestingT with the Config its assertion
// chains should use. Chains started from a Configured unwrap it
// immediately, so Helper and Fatal reach the underlying test.
type Configured struct {
	TestingT
	cfg Config
}

// Configure returns t with opts applied on top of any
// configuration t already carries.
func Configure(t TestingT, opts ...Option) *Configured {
	inner, cfg := Resolve(t)
	return &Configured{TestingT: inner, cfg: cfg.With(opts...)}
}

// Config returns the configuration carried by c.
func (c *Configured) Config() Config {
	return c.cfg
}

// Resolve returns the test handle to report failures on and the
// configuration to evaluate with.
func Resolve(t TestingT) (TestingT, Config) {
	if c, ok := t.(*Configured); ok {
		return c.TestingT, c.cfg
	}
	return t, DefaultConfig()
}
