package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the JSON document.
var ErrPathNotFound = errors.New("path not found")

// ErrInvalidPath is returned for paths with empty segments such as "a..b".
var ErrInvalidPath = errors.New("invalid path")

// ErrNotObject is returned when a map target receives a JSON value that is not an object.
var ErrNotObject = errors.New("not a JSON object")

// ErrTrailingData is returned when the input holds more than one JSON value.
var ErrTrailingData = errors.New("trailing data after JSON value")

// Parser implements config.Parser interface for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses JSON data and unmarshals the section at path into the target.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := decode(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	section, err := selectSection(data, path)
	if err != nil {
		return err
	}

	err = decode(section, target)
	if err != nil {
		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// decode unmarshals data into target. Generic targets (*map[string]any and
// *any) are built token by token so that integers keep their exact value
// instead of becoming float64.
func decode(data []byte, target any) error {
	switch typed := target.(type) {
	case *map[string]any:
		value, err := readDocument(data)
		if err != nil {
			return err
		}

		if value == nil {
			*typed = nil

			return nil
		}

		object, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: got %T", ErrNotObject, value)
		}

		*typed = object

		return nil
	case *any:
		value, err := readDocument(data)
		if err != nil {
			return err
		}

		*typed = value

		return nil
	default:
		return json.Unmarshal(data, target) //nolint:wrapcheck // wrapped by Parse
	}
}

func readDocument(data []byte) (any, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))

	value, err := readValue(dec)
	if err != nil {
		return nil, err
	}

	_, err = dec.ReadToken()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return value, nil
}

func readValue(dec *jsontext.Decoder) (any, error) {
	switch dec.PeekKind() {
	case '{':
		return readObject(dec)
	case '[':
		return readArray(dec)
	}

	raw, err := dec.ReadValue()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Parse
	}

	switch raw.Kind() {
	case 'n':
		return nil, nil
	case 't':
		return true, nil
	case 'f':
		return false, nil
	case '0':
		return parseNumber(string(raw))
	default:
		var str string

		err = json.Unmarshal(raw, &str)
		if err != nil {
			return nil, err //nolint:wrapcheck // wrapped by Parse
		}

		return str, nil
	}
}

func readObject(dec *jsontext.Decoder) (map[string]any, error) {
	_, err := dec.ReadToken()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Parse
	}

	object := make(map[string]any)

	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return nil, err //nolint:wrapcheck // wrapped by Parse
		}

		value, err := readValue(dec)
		if err != nil {
			return nil, err
		}

		object[name.String()] = value
	}

	_, err = dec.ReadToken()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Parse
	}

	return object, nil
}

func readArray(dec *jsontext.Decoder) ([]any, error) {
	_, err := dec.ReadToken()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Parse
	}

	items := make([]any, 0)

	for dec.PeekKind() != ']' {
		value, err := readValue(dec)
		if err != nil {
			return nil, err
		}

		items = append(items, value)
	}

	_, err = dec.ReadToken()
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by Parse
	}

	return items, nil
}

// parseNumber keeps integers exact: int64 first, then uint64, then float64.
func parseNumber(literal string) (any, error) {
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i, nil
	}

	if u, err := strconv.ParseUint(literal, 10, 64); err == nil {
		return u, nil
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, fmt.Errorf("number %s: %w", literal, err)
	}

	return f, nil
}

// selectSection returns the raw JSON value found at the dotted path.
func selectSection(data []byte, path string) (jsontext.Value, error) {
	segments := strings.Split(path, ".")

	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	current := jsontext.Value(data)
	if !current.IsValid() {
		return nil, fmt.Errorf("unmarshal error: %w", json.Unmarshal(current, new(any)))
	}

	for _, segment := range segments {
		if current.Kind() != '{' {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		var object map[string]jsontext.Value

		err := json.Unmarshal(current, &object)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		next, ok := object[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = next
	}

	return current, nil
}
