package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte, target any, path string) error
}

func (m *mockParser) Parse(data []byte, target any, path string) error {
	return m.parseFunc(data, target, path)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

func staticFetcher(data string) *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte(data), nil
		},
	}
}

func documentParser(document map[string]any) *mockParser {
	return &mockParser{
		parseFunc: func(_ []byte, target any, _ string) error {
			out, ok := target.(*map[string]any)
			if !ok {
				return errors.New("invalid target type")
			}

			*out = document

			return nil
		},
	}
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	var gotPath string

	parser := &mockParser{
		parseFunc: func(data []byte, target any, path string) error {
			gotPath = path

			out, ok := target.(*map[string]any)
			if !ok {
				return errors.New("invalid target type")
			}

			*out = map[string]any{"name": string(data), "port": 8080}

			return nil
		},
	}

	tree, err := Provider("services.api")(parser, staticFetcher("test"))
	require.NoError(t, err)

	assert.Equal(t, "services.api", gotPath)

	name, err := Get(tree, "name", String)
	require.NoError(t, err)
	assert.Equal(t, "test", name)

	port, err := Get(tree, "port", Int)
	require.NoError(t, err)
	assert.Equal(t, int32(8080), port)
}

func TestProvider_EmptyDocument(t *testing.T) {
	t.Parallel()

	tree, err := Provider("")(documentParser(nil), staticFetcher("# only comments"))
	require.NoError(t, err)

	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.HasPath("anything"))
}

func TestProvider_IsolatesDocument(t *testing.T) {
	t.Parallel()

	document := map[string]any{"hosts": []any{"a"}}

	tree, err := Provider("")(documentParser(document), staticFetcher("x"))
	require.NoError(t, err)

	document["hosts"].([]any)[0] = "changed"

	hosts, err := Get(tree, "hosts", Slice(String))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, hosts)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")

	tests := []struct {
		name      string
		fetchFunc func() ([]byte, error)
		parseFunc func(data []byte, target any, path string) error
		wantErr   error
		wantText  string
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return nil
			},
			wantErr:  fetchErr,
			wantText: "reading data error",
		},
		{
			name: "parse error",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, _ any, _ string) error {
				return parseErr
			},
			wantErr:  parseErr,
			wantText: "parsing error",
		},
		{
			name: "unsupported value",
			fetchFunc: func() ([]byte, error) {
				return []byte("data"), nil
			},
			parseFunc: func(_ []byte, target any, _ string) error {
				out, _ := target.(*map[string]any)
				*out = map[string]any{"ch": make(chan int)}

				return nil
			},
			wantErr:  ErrUnsupportedValue,
			wantText: "building tree error",
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			parser := &mockParser{parseFunc: testInfo.parseFunc}
			fetcher := &mockDataFetcher{fetchFunc: testInfo.fetchFunc}

			tree, err := Provider("test.path")(parser, fetcher)

			assert.Nil(t, tree)
			require.ErrorIs(t, err, testInfo.wantErr)
			assert.Contains(t, err.Error(), testInfo.wantText)
		})
	}
}

//nolint:paralleltest // replaces the default slog logger
func TestProvider_LogsLoad(t *testing.T) {
	var buf bytes.Buffer

	oldDefault := slog.Default()

	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	t.Cleanup(func() { slog.SetDefault(oldDefault) })

	_, err := Provider("api")(documentParser(map[string]any{"a": 1, "b": 2}), staticFetcher("x"))
	require.NoError(t, err)

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "configuration loaded", entry["msg"])
	assert.Equal(t, "api", entry["path"])
	assert.InDelta(t, 2.0, entry["keys"], 0)
}
