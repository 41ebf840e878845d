package config

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Handle is a read-only view of a hierarchical configuration.
//
// Paths are dot separated ("server.http.port"). A path holding null is
// reported as absent. Implementations must be immutable once obtained so
// that accessors can read them concurrently without coordination.
type Handle interface {
	HasPath(path string) bool
	Lookup(path string) (Value, bool)
}

// Kind identifies the shape of a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindList
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindTree:
		return "tree"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

type numberForm int

const (
	numberInt numberForm = iota
	numberUint
	numberFloat
)

// Number is a decoded numeric scalar. Integers keep their exact value;
// unsigned integers are only used above math.MaxInt64.
type Number struct {
	form numberForm
	i    int64
	u    uint64
	f    float64
}

// IntNumber returns a Number holding an integer.
func IntNumber(i int64) Number {
	return Number{form: numberInt, i: i}
}

// FloatNumber returns a Number holding a floating point value.
func FloatNumber(f float64) Number {
	return Number{form: numberFloat, f: f}
}

func uintNumber(u uint64) Number {
	if u <= math.MaxInt64 {
		return IntNumber(int64(u))
	}

	return Number{form: numberUint, u: u}
}

// IsInteger reports whether the number was stored as an integer.
func (n Number) IsInteger() bool {
	return n.form != numberFloat
}

// Int64 returns the number as int64 when it is integral and fits.
func (n Number) Int64() (int64, bool) {
	switch n.form {
	case numberInt:
		return n.i, true
	case numberUint:
		return 0, false
	default:
		if n.f != math.Trunc(n.f) || n.f < -(1<<63) || n.f >= 1<<63 {
			return 0, false
		}

		return int64(n.f), true
	}
}

// Float64 returns the number as float64. Large integers may lose precision.
func (n Number) Float64() float64 {
	switch n.form {
	case numberInt:
		return float64(n.i)
	case numberUint:
		return float64(n.u)
	default:
		return n.f
	}
}

func (n Number) String() string {
	switch n.form {
	case numberInt:
		return strconv.FormatInt(n.i, 10)
	case numberUint:
		return strconv.FormatUint(n.u, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// parseNumber parses a decimal literal. Non-finite floats are rejected.
func parseNumber(s string) (Number, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntNumber(i), true
	}

	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return uintNumber(u), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}, false
	}

	return FloatNumber(f), true
}

// Value is an immutable configuration node: null, string, boolean, number, list or tree.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	b    bool
	num  Number
	list []Value
	tree *Tree
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NumberValue returns a numeric Value.
func NumberValue(n Number) Value {
	return Value{kind: KindNumber, num: n}
}

// ListValue returns a list Value holding a copy of items.
func ListValue(items ...Value) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// TreeValue returns a Value wrapping a nested tree. A nil tree is null.
func TreeValue(tree *Tree) Value {
	if tree == nil {
		return Value{}
	}

	return Value{kind: KindTree, tree: tree}
}

// ValueOf converts a decoded Go value into a Value.
//
// Supported inputs are nil, strings, booleans, all integer and float kinds,
// time.Time (rendered as RFC 3339), fmt.Stringer, slices, arrays and maps.
// Map keys are rendered with fmt.Sprint.
func ValueOf(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Value{}, nil
	case Value:
		return typed, nil
	case *Tree:
		return TreeValue(typed), nil
	case string:
		return StringValue(typed), nil
	case bool:
		return BoolValue(typed), nil
	case time.Time:
		return StringValue(typed.Format(time.RFC3339Nano)), nil
	case time.Duration:
		return StringValue(typed.String()), nil
	}

	rv := reflect.ValueOf(raw)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberValue(IntNumber(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberValue(uintNumber(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NumberValue(FloatNumber(rv.Float())), nil
	case reflect.String:
		return StringValue(rv.String()), nil
	case reflect.Bool:
		return BoolValue(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Value{}, nil
		}

		items := make([]Value, rv.Len())

		for i := range rv.Len() {
			item, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}

			items[i] = item
		}

		return Value{kind: KindList, list: items}, nil
	case reflect.Map:
		if rv.IsNil() {
			return Value{}, nil
		}

		values := make(map[string]Value, rv.Len())
		iter := rv.MapRange()

		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())

			item, err := ValueOf(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", key, err)
			}

			values[key] = item
		}

		return TreeValue(&Tree{values: values}), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Value{}, nil
		}
	}

	if stringer, ok := raw.(fmt.Stringer); ok {
		return StringValue(stringer.String()), nil
	}

	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		return ValueOf(rv.Elem().Interface())
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
}

// Kind returns the shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string held by a string value.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean held by a boolean value.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number held by a numeric value.
func (v Value) AsNumber() (Number, bool) {
	return v.num, v.kind == KindNumber
}

// AsList returns a copy of the elements of a list value.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}

	return slices.Clone(v.list), true
}

// AsTree returns the nested tree of a tree value.
func (v Value) AsTree() (*Tree, bool) {
	return v.tree, v.kind == KindTree
}

// Len returns the number of list elements or tree keys, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindTree:
		return v.tree.Len()
	default:
		return 0
	}
}

// Index returns the i-th list element. It returns null when v is not a list
// or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Value{}
	}

	return v.list[i]
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return v.num.String()
	case KindList:
		items := make([]string, len(v.list))
		for i, item := range v.list {
			items[i] = item.String()
		}

		return "[" + strings.Join(items, ", ") + "]"
	case KindTree:
		return v.tree.String()
	default:
		return "null"
	}
}

func (v Value) describe() string {
	switch v.kind {
	case KindString, KindBool, KindNumber:
		return v.kind.String() + " " + v.String()
	default:
		return v.kind.String()
	}
}

// Tree is an immutable configuration tree. It implements Handle.
type Tree struct {
	values map[string]Value
}

var _ Handle = (*Tree)(nil)

// NewTree builds a Tree from a decoded document. The document is deep copied.
func NewTree(document map[string]any) (*Tree, error) {
	values := make(map[string]Value, len(document))

	for key, raw := range document {
		value, err := ValueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		values[key] = value
	}

	return &Tree{values: values}, nil
}

// HasPath reports whether path exists and does not hold null.
func (t *Tree) HasPath(path string) bool {
	_, ok := t.Lookup(path)

	return ok
}

// Lookup returns the value at path. Absent and null paths report false.
func (t *Tree) Lookup(path string) (Value, bool) {
	if t == nil || path == "" {
		return Value{}, false
	}

	current := t

	segments := strings.Split(path, ".")
	for i, segment := range segments {
		value, exists := current.values[segment]
		if !exists || value.IsNull() {
			return Value{}, false
		}

		if i == len(segments)-1 {
			return value, true
		}

		next, isTree := value.AsTree()
		if !isTree {
			return Value{}, false
		}

		current = next
	}

	return Value{}, false
}

// Sub returns the nested tree at path.
func (t *Tree) Sub(path string) (*Tree, error) {
	return Subtree.Get(t, path)
}

// Keys returns the direct child keys in sorted order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}

	keys := lo.Keys(t.values)
	slices.Sort(keys)

	return keys
}

// Len returns the number of direct child keys.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.values)
}

func (t *Tree) String() string {
	keys := t.Keys()
	entries := make([]string, len(keys))

	for i, key := range keys {
		entries[i] = key + ": " + t.values[key].String()
	}

	return "{" + strings.Join(entries, ", ") + "}"
}

// elementHandle exposes a single list element or map entry under its qualified path,
// so element accessors report errors against "servers[2]" rather than an internal key.
type elementHandle struct {
	path  string
	value Value
}

func (h elementHandle) HasPath(path string) bool {
	_, ok := h.Lookup(path)

	return ok
}

// Lookup resolves the element itself and, for tree elements, paths below it
// such as "servers[2].host".
func (h elementHandle) Lookup(path string) (Value, bool) {
	if h.value.IsNull() {
		return Value{}, false
	}

	if path == h.path {
		return h.value, true
	}

	rest, ok := strings.CutPrefix(path, h.path+".")
	if !ok {
		return Value{}, false
	}

	tree, isTree := h.value.AsTree()
	if !isTree {
		return Value{}, false
	}

	return tree.Lookup(rest)
}

// JoinPath joins path segments with dots, skipping empty segments.
func JoinPath(segments ...string) string {
	return strings.Join(lo.Compact(segments), ".")
}
