package fxconfig

import (
	"context"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/config"
	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

const appYAML = `
server:
  port: 8080
  timeout: 15s
  hosts: [a, b]
`

func memFs(t *testing.T, name, content string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o600))

	return fsys
}

func TestNewModule_ProvidesNamedTree(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, "/app.yaml", appYAML)

	var tree *config.Tree

	app := fxtest.New(t,
		NewModule("app", "/app.yaml", WithFs(fsys)),
		fx.Populate(fx.Annotate(&tree, fx.ParamTags(NameTag("app")))),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, tree)

	port, err := config.Get(tree, "server.port", config.Int)
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)
}

func TestValue_ProvidesTypedValues(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, "/app.yml", appYAML)

	type params struct {
		fx.In

		Port    int32         `name:"app.server.port"`
		Timeout time.Duration `name:"app.server.timeout"`
		Hosts   []string      `name:"app.server.hosts"`
	}

	var got params

	app := fxtest.New(t,
		NewModule("app", "/app.yml", WithFs(fsys)),
		Value("app", "server.port", config.Int),
		Value("app", "server.timeout", config.Duration),
		Value("app", "server.hosts", config.Slice(config.String)),
		fx.Invoke(func(p params) {
			got = p
		}),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, int32(8080), got.Port)
	assert.Equal(t, 15*time.Second, got.Timeout)
	assert.Equal(t, []string{"a", "b"}, got.Hosts)
}

func TestValue_MissingPathFailsStart(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, "/app.yaml", appYAML)

	app := fx.New(
		fx.NopLogger,
		NewModule("app", "/app.yaml", WithFs(fsys)),
		Value("app", "server.missing", config.Int),
		fx.Invoke(fx.Annotate(func(int32) {}, fx.ParamTags(`name:"app.server.missing"`))),
	)

	err := app.Err()
	require.ErrorIs(t, err, config.ErrNotFound)
}

func TestNewModule_JSONAndRoot(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, "/settings.json", `{"db": {"pool": {"size": 16}}}`)

	var tree *config.Tree

	app := fxtest.New(t,
		NewModule("db", "/settings.json", WithFs(fsys), WithRoot("db.pool")),
		fx.Populate(fx.Annotate(&tree, fx.ParamTags(NameTag("db")))),
	)

	app.RequireStart()
	defer app.RequireStop()

	size, err := config.Get(tree, "size", config.Int)
	require.NoError(t, err)
	assert.Equal(t, int32(16), size)
}

func TestNewModule_ExplicitParser(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, "/settings.conf", `{"name": "x"}`)

	var tree *config.Tree

	app := fxtest.New(t,
		NewModule("raw", "/settings.conf", WithFs(fsys), WithParser(jsonparser.NewParser())),
		fx.Populate(fx.Annotate(&tree, fx.ParamTags(NameTag("raw")))),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.True(t, tree.HasPath("name"))
}

func TestNewModule_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		module  fx.Option
		wantErr error
	}{
		{
			name:    "empty name",
			module:  NewModule("", "/app.yaml"),
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown format",
			module:  NewModule("app", "/app.toml"),
			wantErr: ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fx.New(fx.NopLogger, tt.module)

			require.ErrorIs(t, app.Err(), tt.wantErr)
		})
	}
}

func TestNewModule_MissingFileFailsStart(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		NewModule("app", "/missing.yaml", WithFs(afero.NewMemMapFs())),
		fx.Invoke(fx.Annotate(func(*config.Tree) {}, fx.ParamTags(NameTag("app")))),
	)

	err := app.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `config "app"`)

	assert.Error(t, app.Start(context.Background()))
}

func TestNameTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `name:"app"`, NameTag("app"))
}
