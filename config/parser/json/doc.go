// Package json provides a JSON parser implementation for the config package.
//
// Documents are decoded with github.com/go-json-experiment/json, which
// rejects duplicate object names and invalid UTF-8. The parser navigates the
// same dotted paths as the YAML parser ("api.permissions") before decoding
// the selected section into the target.
//
// Usage:
//
//	parser := json.NewParser()
//	var document map[string]any
//	err := parser.Parse(data, &document, "api")
//
// JSON numbers decode as float64, so integers beyond 2^53 lose precision.
package json
