package configfile

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies a target type for explicit coercion.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type coerceMode int

const (
	coerceNone coerceMode = iota
	coerceExplicit
	coerceInfer
)

// coerceRequest is the single tagged form of the two coercion modes.
// An explicit kind takes precedence over inference when both are
// requested on the same call.
type coerceRequest struct {
	mode coerceMode
	kind Kind
}

// applyCoercion dispatches a retrieved value through the requested
// coercion mode.
func applyCoercion(value any, req coerceRequest) (any, error) {
	switch req.mode {
	case coerceExplicit:
		return coerceKind(value, req.kind)
	case coerceInfer:
		return inferValue(value), nil
	default:
		return value, nil
	}
}

// coerceKind converts a single scalar value to the requested kind.
// Mappings and sequences are rejected; inference handles those.
func coerceKind(value any, kind Kind) (any, error) {
	switch value.(type) {
	case map[string]any, []any:
		return nil, fmt.Errorf("%w: explicit conversion applies to scalar values, got %T", ErrCoercion, value)
	}

	switch kind {
	case KindString:
		return coerceString(value)
	case KindInt:
		return coerceInt64(value)
	case KindFloat:
		return coerceFloat64(value)
	case KindBool:
		return coerceBool(value)
	}
	return nil, fmt.Errorf("%w: unknown kind %v", ErrCoercion, kind)
}

// coerceString converts common scalar types to their string form.
func coerceString(value any) (string, error) {
	if value == nil {
		return "", nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}

	return "", fmt.Errorf("%w: %T to string", ErrCoercion, value)
}

// coerceInt64 converts numeric types, parsable strings, and booleans to
// int64. Floats and float-form strings are truncated.
func coerceInt64(value any) (int64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: nil to int", ErrCoercion)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(^uint64(0)>>1) {
			return 0, fmt.Errorf("%w: unsigned integer %d overflows int64", ErrCoercion, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	case reflect.String:
		s := rv.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("%w: string %q to int", ErrCoercion, s)
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("%w: %T to int", ErrCoercion, value)
}

// coerceFloat64 converts numeric types, parsable strings, and booleans to
// float64.
func coerceFloat64(value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: nil to float", ErrCoercion)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		s := rv.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		return 0, fmt.Errorf("%w: string %q to float", ErrCoercion, s)
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("%w: %T to float", ErrCoercion, value)
}

// coerceBool converts parsable strings and numeric types (0 is false,
// non-zero is true) to bool.
func coerceBool(value any) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("%w: nil to bool", ErrCoercion)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		s := rv.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		}
		return false, fmt.Errorf("%w: string %q to bool", ErrCoercion, s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}

	return false, fmt.Errorf("%w: %T to bool", ErrCoercion, value)
}

var (
	intPattern   = regexp.MustCompile(`^[+-]?\d+$`)
	floatPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+|\d+)([eE][+-]?\d+)?$`)
)

// inferValue applies the fixed inference table to a retrieved value.
// Strings are parsed into the most specific type they match; mappings
// and sequences are inferred recursively (keys are left untouched).
// Inference never fails: anything unrecognized stays as-is.
func inferValue(value any) any {
	switch v := value.(type) {
	case string:
		return inferScalar(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		inferred := make(map[string]any, len(v))
		for key, val := range v {
			inferred[key] = inferValue(val)
		}
		return inferred
	case []any:
		inferred := make([]any, len(v))
		for i, val := range v {
			inferred[i] = inferValue(val)
		}
		return inferred
	default:
		return value
	}
}

// inferScalar parses a string per the inference table: literal
// true/false (case-insensitive), then integer, then float, then a JSON
// list or mapping literal, otherwise the string itself.
func inferScalar(s string) any {
	if strings.EqualFold(s, "true") {
		return true
	}
	if strings.EqualFold(s, "false") {
		return false
	}

	if intPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
	}
	if floatPattern.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		decoder := json.NewDecoder(strings.NewReader(trimmed))
		decoder.UseNumber()
		var parsed any
		if err := decoder.Decode(&parsed); err == nil {
			return inferValue(parsed)
		}
	}

	return s
}
