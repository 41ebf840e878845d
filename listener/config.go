// Package listener provides an HTTP listener module for the Fx DI container.
//
// Listener settings are read from a configuration tree with typed accessors,
// so a section like
//
//	listener:
//	  api:
//	    address: ":9090"
//	    request_timeout: 30s
//	    max_request_size: 4M
//
// becomes a Config with a 30 second handler deadline and a 4 MiB body limit.
package listener

import (
	"errors"
	"fmt"
	"time"

	"github.com/0xalexb/hjarta-config/config"
)

// DefaultAddress is the default address for the HTTP listener.
const DefaultAddress = ":8080"

// DefaultReadHeaderTimeout is the default timeout for reading request headers.
const DefaultReadHeaderTimeout = 10 * time.Second

// ConfigRoot is the section of a configuration tree holding listener settings,
// one subtree per listener name.
const ConfigRoot = "listener"

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrNegativeLimit is returned when a timeout or size limit is negative.
var ErrNegativeLimit = errors.New("limit must not be negative")

// ErrListenFailed is returned when the server fails to listen on the configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// ErrEmptyName is returned when the listener name is empty.
var ErrEmptyName = errors.New("listener name must not be empty")

// ErrNilHandler is returned when a nil http.Handler is provided.
var ErrNilHandler = errors.New("handler must not be nil")

// Config holds the configuration for an HTTP listener.
// A zero RequestTimeout or MaxRequestSize disables the matching middleware.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	MaxRequestSize    config.ByteSize
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}

	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.ReadHeaderTimeout < 0 {
		return fmt.Errorf("read header timeout %s: %w", c.ReadHeaderTimeout, ErrNegativeLimit)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout %s: %w", c.RequestTimeout, ErrNegativeLimit)
	}

	if c.MaxRequestSize < 0 {
		return fmt.Errorf("max request size %d: %w", c.MaxRequestSize, ErrNegativeLimit)
	}

	return nil
}

// LoadConfig reads a Config from the section at path. Missing keys keep
// their defaults, so an absent section yields the default Config.
func LoadConfig(cfg config.Handle, path string) (Config, error) {
	_, _, err := config.Lookup(cfg, path, config.Subtree)
	if err != nil {
		return Config{}, err
	}

	var result Config

	result.SetDefaults()

	result.Address, err = config.GetOr(cfg, config.JoinPath(path, "address"), config.String, result.Address)
	if err != nil {
		return Config{}, err
	}

	result.ReadHeaderTimeout, err = config.GetOr(cfg, config.JoinPath(path, "read_header_timeout"),
		config.Duration, result.ReadHeaderTimeout)
	if err != nil {
		return Config{}, err
	}

	result.RequestTimeout, err = config.GetOr(cfg, config.JoinPath(path, "request_timeout"),
		config.Duration, result.RequestTimeout)
	if err != nil {
		return Config{}, err
	}

	result.MaxRequestSize, err = config.GetOr(cfg, config.JoinPath(path, "max_request_size"),
		config.MemorySize, result.MaxRequestSize)
	if err != nil {
		return Config{}, err
	}

	err = result.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("%q: %w", path, err)
	}

	return result, nil
}
