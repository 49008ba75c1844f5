package arith

// DefaultMaxElements bounds a single result allocation (2 GiB of float64).
const DefaultMaxElements = 1 << 28

// DefaultAccelThreshold is the element count from which accelerated kernels
// are used. Shorter operands go straight through the scalar primitive.
const DefaultAccelThreshold = 16

// Config holds engine settings.
type Config struct {
	// StrictOps reports codes without a meaning of their own as ErrUnknownOp
	// instead of falling back to Subtract (binary) or identity (unary).
	StrictOps bool

	// MaxElements caps the element count of one result. Zero disables the cap.
	MaxElements int

	// AccelThreshold is the minimum operand length for accelerated kernels.
	AccelThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the boundary-compatible defaults: fallback op codes,
// DefaultMaxElements and DefaultAccelThreshold.
func DefaultConfig() Config {
	return Config{
		StrictOps:      false,
		MaxElements:    DefaultMaxElements,
		AccelThreshold: DefaultAccelThreshold,
	}
}

// WithStrictOps enables or disables strict operation codes.
func WithStrictOps(strict bool) Option {
	return func(cfg *Config) {
		cfg.StrictOps = strict
	}
}

// WithMaxElements sets the per-result element cap. n <= 0 removes the cap.
func WithMaxElements(n int) Option {
	return func(cfg *Config) {
		if n < 0 {
			n = 0
		}
		cfg.MaxElements = n
	}
}

// WithAccelThreshold sets the minimum length for accelerated kernels.
// Negative values are ignored.
func WithAccelThreshold(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.AccelThreshold = n
		}
	}
}

// WithConfig replaces the whole configuration with cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
