// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support, so only the requested section is decoded. The parser
// converts dotted config paths (e.g., "api.permissions") to YAML path format
// (e.g., "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var document map[string]any
//	err := parser.Parse(data, &document, "api.permissions")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api.permissions" -> "$.api.permissions"
//   - Empty segments ("api..x") -> ErrInvalidPath
package yaml
