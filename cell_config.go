package rwcell

// Config defines configurable options for Cell initialization.
type Config struct {
	// relax is the backoff policy every spin loop on the cell runs
	// between failed attempts. If nil, Spin is used.
	relax Relax
}

// WithRelax sets the backoff policy the cell's spin loops run between
// failed acquisition attempts. The default Spin suits short critical
// sections; pass Yield under cooperative or heavily oversubscribed
// schedulers. A nil relax is ignored.
//
// Usage:
//
//	c := New(0, WithRelax(Yield))
func WithRelax(relax Relax) func(*Config) {
	return func(c *Config) {
		if relax != nil {
			c.relax = relax
		}
	}
}
