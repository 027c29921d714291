package regia

import "log/slog"

// options holds the internal configuration for the service.
type options struct {
	mustExist bool
	logger    *slog.Logger
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		mustExist: false,
		logger:    nil,
	}
}

// WithMustExist makes Open fail when the database file is missing instead of
// starting from a fresh empty database.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
