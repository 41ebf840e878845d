package listener

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/fxconfig"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named HTTP listener.
// The name is used as both the module name and the DI named tag for http.Handler and Config.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (see NewModuleFromTree).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(fxconfig.NameTag(name))),
		))
	}

	return fx.Module(name, append(moduleOpts, serve(name))...)
}

// NewModuleFromTree creates a listener module whose Config is read with
// LoadConfig from the *config.Tree tagged tree, at "listener.<name>".
// Options are applied on top of the loaded values.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModuleFromTree(name, tree string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	path := config.JoinPath(ConfigRoot, name)

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func(source *config.Tree) (Config, error) {
					cfg, err := LoadConfig(source, path)
					if err != nil {
						return Config{}, fmt.Errorf("listener %q: %w", name, err)
					}

					for _, apply := range opts {
						apply(&cfg)
					}

					return cfg, nil
				},
				fx.ParamTags(fxconfig.NameTag(tree)),
				fx.ResultTags(fxconfig.NameTag(name)),
			),
		),
		serve(name),
	)
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func serve(name string) fx.Option {
	return fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, handler http.Handler, listenerCfg Config) error {
				srv, err := NewServer(name, handler, listenerCfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", fxconfig.NameTag(name), fxconfig.NameTag(name)),
		),
	)
}
