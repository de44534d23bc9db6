package convert

import "log/slog"

// config holds the settings applied when a Registry is created.
type config struct {
	logger     *slog.Logger
	converters []Converter
}

// newConfig creates a configuration with default values.
func newConfig() *config {
	return &config{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger used for lookup diagnostics.
// A nil logger keeps the default, which discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConverters appends converters in the given order.
func WithConverters(converters ...Converter) Option {
	return func(c *config) {
		c.converters = append(c.converters, converters...)
	}
}

// WithDefaults appends the built-in converters returned by Defaults.
func WithDefaults() Option {
	return WithConverters(Defaults()...)
}
