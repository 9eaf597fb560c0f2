package cv

import (
	"log/slog"
	"runtime"
)

// Option configures an Engine.
// Use functional options to choose the execution strategy.
//
// Example:
//
//	// Default: single-threaded
//	e := cv.NewEngine()
//
//	// Four workers, one contiguous band of rows each
//	e := cv.NewEngine(cv.WithWorkers(4))
type Option func(*options)

// options holds the engine configuration.
type options struct {
	workers int
	logger  *slog.Logger
}

// defaultOptions returns the sequential configuration.
func defaultOptions() options {
	return options{
		workers: 1,
		logger:  nil, // resolved through Logger() at call time
	}
}

// Sequential runs every convolution on the calling goroutine.
// This is the default.
func Sequential() Option {
	return func(o *options) {
		o.workers = 1
	}
}

// WithWorkers splits output rows across n goroutines per call.
// Values below 2 select sequential execution. Each call uses at most one
// goroutine per image row, so n larger than the image height is allowed.
//
// Output is byte-identical to sequential execution for any n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = max(n, 1)
	}
}

// WithAutoWorkers uses runtime.GOMAXPROCS(0) workers, read when the
// option is applied.
func WithAutoWorkers() Option {
	return func(o *options) {
		o.workers = runtime.GOMAXPROCS(0)
	}
}

// WithLogger sets the logger for one engine instead of the package
// default. A nil logger restores the package default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
