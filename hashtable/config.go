package hashtable

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"
)

const (
	// DefaultInitialBuckets is the bucket count of a new table.
	DefaultInitialBuckets = 64

	// DefaultMaxBuckets caps growth; it is also the largest value WithMaxBuckets accepts.
	DefaultMaxBuckets = 1 << 30

	// DefaultLoadFactor is the ratio of used buckets to buckets above which the table grows.
	DefaultLoadFactor = 0.75
)

// Config holds the construction-time settings of a HashTable.
type Config struct {
	InitialBuckets int
	MaxBuckets     int
	LoadFactor     float64
	Logger         *zap.Logger
}

type Option func(*Config)

// WithInitialBuckets sets the starting bucket count. It must be a power of two.
func WithInitialBuckets(n int) Option {
	return func(c *Config) {
		c.InitialBuckets = n
	}
}

// WithMaxBuckets sets the bucket count past which the table stops growing.
// It must be a power of two no larger than DefaultMaxBuckets.
func WithMaxBuckets(n int) Option {
	return func(c *Config) {
		c.MaxBuckets = n
	}
}

func WithLoadFactor(f float64) Option {
	return func(c *Config) {
		c.LoadFactor = f
	}
}

// WithLogger routes resize diagnostics to logger. Tables are silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func NewConfig(options ...Option) Config {
	cfg := Config{
		InitialBuckets: DefaultInitialBuckets,
		MaxBuckets:     DefaultMaxBuckets,
		LoadFactor:     DefaultLoadFactor,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Validate reports the first setting that New would reject.
func (c Config) Validate() error {
	switch {
	case !isPowerOfTwo(c.MaxBuckets) || c.MaxBuckets > DefaultMaxBuckets:
		return fmt.Errorf("%w: max buckets %d is not a power of two in [1, %d]",
			ErrInvalidConfig, c.MaxBuckets, DefaultMaxBuckets)
	case !isPowerOfTwo(c.InitialBuckets) || c.InitialBuckets > c.MaxBuckets:
		return fmt.Errorf("%w: initial buckets %d is not a power of two in [1, %d]",
			ErrInvalidConfig, c.InitialBuckets, c.MaxBuckets)
	case !(c.LoadFactor > 0 && c.LoadFactor <= 1):
		return fmt.Errorf("%w: load factor %v is outside (0, 1]", ErrInvalidConfig, c.LoadFactor)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
