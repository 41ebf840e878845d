package listener

import (
	"time"

	"github.com/0xalexb/hjarta-config/config"
)

// Option defines a function type for configuring an HTTP listener.
type Option func(*Config)

// WithAddress sets the address for the HTTP listener.
func WithAddress(addr string) Option {
	return func(cfg *Config) {
		cfg.Address = addr
	}
}

// WithReadHeaderTimeout sets how long the server waits for request headers.
func WithReadHeaderTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.ReadHeaderTimeout = timeout
	}
}

// WithRequestTimeout sets the handler deadline. Zero disables it.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.RequestTimeout = timeout
	}
}

// WithMaxRequestSize limits request bodies to size. Zero disables the limit.
func WithMaxRequestSize(size config.ByteSize) Option {
	return func(cfg *Config) {
		cfg.MaxRequestSize = size
	}
}
