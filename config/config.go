package config

import (
	"fmt"
	"log/slog"
)

// Parser defines an interface for decoding configuration data into a target.
//
// The path parameter selects a section of the document using the same dot
// separated syntax accessors use. For example:
//   - "api.permissions" navigates to document["api"]["permissions"]
//   - "" (empty path) decodes the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml and config/parser/json.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads and parses configuration data and
// freezes the section at path into an immutable Tree.
func Provider(path string) func(Parser, DataFetcher) (*Tree, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*Tree, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		var document map[string]any

		err = parser.Parse(data, &document, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		tree, err := NewTree(document)
		if err != nil {
			return nil, fmt.Errorf("building tree error: %w", err)
		}

		slog.Info("configuration loaded", slog.String("path", path), slog.Int("keys", tree.Len()))

		return tree, nil
	}
}
