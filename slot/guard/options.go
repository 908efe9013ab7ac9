package guard

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type config struct {
	logger *zap.Logger
	stack  bool
	newID  func() uuid.UUID
}

// Option configures Run and Value.
type Option func(*config)

// WithLogger sets the logger faults are reported to. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStack controls whether a Fault captures the goroutine stack. Defaults to true.
func WithStack(capture bool) Option {
	return func(c *config) {
		c.stack = capture
	}
}

// WithIDGenerator replaces uuid.New as the source of incident ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(c *config) {
		if newID != nil {
			c.newID = newID
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: zap.NewNop(),
		stack:  true,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
