package buffer

import (
	"log/slog"
	"runtime"
)

// Option configures a Buffer during creation.
//
// Example:
//
//	buf, err := buffer.New[int64, region.D3](8,
//	    buffer.WithLogger(slog.Default()),
//	    buffer.WithCapacity(1<<20),
//	)
type Option func(*config)

type config struct {
	logger      *slog.Logger
	capacity    int64
	parallelism int
}

func defaultConfig() config {
	return config{
		logger:      slog.New(slog.DiscardHandler),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the logger used for registration and transfer events.
// Events are logged at debug level. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity preallocates storage for the given number of elements.
func WithCapacity(elements int64) Option {
	return func(c *config) {
		if elements > 0 {
			c.capacity = elements
		}
	}
}

// WithParallelism bounds the number of concurrent transfers run by
// Gather and Scatter.
//
// Default: runtime.GOMAXPROCS(0)
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}
