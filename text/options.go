package text

import "log/slog"

// Option configures a Registry.
type Option func(*registryConfig)

type registryConfig struct {
	faceCapacity int
	logger       *slog.Logger
	skipDefaults bool
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{
		faceCapacity: 64,
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithFaceCapacity bounds how many sized faces stay cached.
func WithFaceCapacity(n int) Option {
	return func(c *registryConfig) {
		c.faceCapacity = n
	}
}

// WithLogger sets the logger used for registry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithoutDefaultFonts skips registering the Go fonts.
func WithoutDefaultFonts() Option {
	return func(c *registryConfig) {
		c.skipDefaults = true
	}
}
