package hjarta

import (
	"github.com/0xalexb/hjarta-config/config/fxconfig"
	"github.com/0xalexb/hjarta-config/listener"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogConfig *logging.LoggerConfig
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the file at fpath into a *config.Tree tagged `name:"<name>"`.
// Typed values can then be provided from it with fxconfig.Value.
func WithConfigFile(name, fpath string, opts ...fxconfig.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fxconfig.NewModule(name, fpath, opts...))
	}
}

// WithHTTPListener adds a named HTTP listener module to the application.
// The name is used as both the Fx module name and the DI named tag for http.Handler and Config.
// When options are provided (e.g., WithAddress), Config is supplied to DI automatically.
// Call multiple times with different names to create multiple listeners.
func WithHTTPListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithConfiguredHTTPListener adds a named HTTP listener whose Config is read
// from "listener.<name>" of the config tree called tree.
func WithConfiguredHTTPListener(name, tree string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModuleFromTree(name, tree, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogConfig sets the full logger configuration, typically obtained from
// logging.LoadConfig. It takes precedence over WithLogLevel.
func WithLogConfig(cfg logging.LoggerConfig) Option {
	return func(opts *Options) {
		opts.LogConfig = &cfg
	}
}
