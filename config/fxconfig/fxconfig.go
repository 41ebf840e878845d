// Package fxconfig exposes configuration trees and typed values to the Fx DI container.
package fxconfig

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/spf13/afero"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("config module name must not be empty")

// ErrUnknownFormat is returned when no parser is given and the file extension is not recognized.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Option configures a config module.
type Option func(*options)

type options struct {
	parser config.Parser
	fs     afero.Fs
	root   string
}

// WithParser overrides the parser chosen from the file extension.
func WithParser(parser config.Parser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// WithFs reads the file from fsys instead of the operating system filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithRoot loads only the section at path, which becomes the root of the tree.
func WithRoot(path string) Option {
	return func(o *options) {
		o.root = path
	}
}

// NewModule creates an Fx module that loads the file at fpath into an
// immutable *config.Tree tagged `name:"<name>"`. The parser is picked from
// the extension (.yaml, .yml, .json) unless WithParser is given.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, fpath string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg options

	for _, apply := range opts {
		apply(&cfg)
	}

	parser := cfg.parser
	if parser == nil {
		var err error

		parser, err = parserFor(fpath)
		if err != nil {
			return fx.Error(err)
		}
	}

	var fetcherOpts []filefetcher.Option
	if cfg.fs != nil {
		fetcherOpts = append(fetcherOpts, filefetcher.WithFs(cfg.fs))
	}

	newFetcher := filefetcher.NewFetcher(fpath, fetcherOpts...)
	provide := config.Provider(cfg.root)

	return fx.Module("config."+name,
		fx.Provide(
			fx.Annotate(
				func() (*config.Tree, error) {
					fetcher, err := newFetcher()
					if err != nil {
						return nil, fmt.Errorf("config %q: %w", name, err)
					}

					tree, err := provide(parser, fetcher)
					if err != nil {
						return nil, fmt.Errorf("config %q: %w", name, err)
					}

					return tree, nil
				},
				fx.ResultTags(NameTag(name)),
			),
		),
	)
}

// Value provides the value read with acc at path from the tree named name.
// The result is tagged `name:"<name>.<path>"`.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Value[T any](name, path string, acc config.Accessor[T]) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(tree *config.Tree) (T, error) {
				value, err := config.Get(tree, path, acc)
				if err != nil {
					return value, fmt.Errorf("config %q: %w", name, err)
				}

				return value, nil
			},
			fx.ParamTags(NameTag(name)),
			fx.ResultTags(NameTag(config.JoinPath(name, path))),
		),
	)
}

// NameTag returns the Fx name tag used for the tree called name.
func NameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}

//nolint:ireturn // returns one of the known parser implementations
func parserFor(fpath string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".json":
		return jsonparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, fpath)
	}
}
