// ABOUTME: Configuration options for the Digests reader client
// ABOUTME: Provides functional options pattern for flexible client configuration

package digests

import (
	"time"

	"digests-feedreader/core/extension"
	"digests-feedreader/core/interfaces"
	"digests-feedreader/pkg/config"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewError(ErrorTypeConfiguration, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithRegistry sets the extension registry used for every entry
func WithRegistry(registry *extension.Registry) Option {
	return func(c *Config) error {
		if registry == nil {
			return NewError(ErrorTypeConfiguration, "registry cannot be nil")
		}
		c.Registry = registry
		return nil
	}
}

// WithExtensions attaches additional named extensions to every entry
func WithExtensions(names ...string) Option {
	return func(c *Config) error {
		c.Extensions = append(c.Extensions, names...)
		return nil
	}
}

// WithExprCacheTTL sets how long compiled XPath expressions are kept
func WithExprCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "expression cache TTL cannot be negative").
				WithContext("ttl", ttl.String())
		}
		c.ExprCacheTTL = ttl
		return nil
	}
}

// WithReaderConfig applies the reader section of an application config
func WithReaderConfig(cfg config.ReaderConfig) Option {
	return func(c *Config) error {
		if err := WithExprCacheTTL(cfg.ExprCacheTTL)(c); err != nil {
			return err
		}
		return WithExtensions(cfg.Extensions...)(c)
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Logger:       DefaultLogger(),
		Registry:     nil, // built-in registry is created in NewClient
		ExprCacheTTL: 0,
	}
}
