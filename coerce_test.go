package configfile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceKind(t *testing.T) {
	tests := []struct {
		name        string
		value       any
		kind        Kind
		expected    any
		expectError bool
	}{
		{"StringToInt", "5", KindInt, int64(5), false},
		{"NegativeStringToInt", "-12", KindInt, int64(-12), false},
		{"BadStringToInt", "blah", KindInt, nil, true},
		{"FloatStringToInt", "5.9", KindInt, int64(5), false},
		{"StringToBool", "true", KindBool, true, false},
		{"BadStringToBool", "maybe", KindBool, nil, true},
		{"StringToFloat", "3.14", KindFloat, 3.14, false},
		{"BadStringToFloat", "pi", KindFloat, nil, true},
		{"IntToString", int64(5), KindString, "5", false},
		{"BoolToInt", true, KindInt, int64(1), false},
		{"IntToBool", int64(0), KindBool, false, false},
		{"NumberToInt", json.Number("7"), KindInt, int64(7), false},
		{"NumberToFloat", json.Number("2.5"), KindFloat, 2.5, false},
		{"MappingRejected", map[string]any{"a": 1}, KindString, nil, true},
		{"SequenceRejected", []any{1, 2}, KindInt, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := coerceKind(tt.value, tt.kind)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrCoercion)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestInferScalar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"True", "true", true},
		{"TrueUpper", "TRUE", true},
		{"FalseMixed", "False", false},
		{"Integer", "5", int64(5)},
		{"NegativeInteger", "-42", int64(-42)},
		{"NumericOneIsInt", "1", int64(1)},
		{"Float", "3.14", 3.14},
		{"Exponent", "1e3", float64(1000)},
		{"ListLiteral", "[1, 2, 3]", []any{int64(1), int64(2), int64(3)}},
		{"MappingLiteral", `{"num": "5", "flag": true}`, map[string]any{"num": int64(5), "flag": true}},
		{"PlainString", "blah", "blah"},
		{"MalformedLiteral", "[not json", "[not json"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferScalar(tt.input))
		})
	}
}

func TestInferValue(t *testing.T) {
	t.Run("RecursesIntoMappings", func(t *testing.T) {
		input := map[string]any{
			"num":  "5",
			"flag": "true",
			"nested": map[string]any{
				"pi": "3.14",
			},
		}
		expected := map[string]any{
			"num":  int64(5),
			"flag": true,
			"nested": map[string]any{
				"pi": 3.14,
			},
		}
		assert.Equal(t, expected, inferValue(input))
	})

	t.Run("RecursesIntoSequences", func(t *testing.T) {
		assert.Equal(t, []any{int64(1), true, "x"}, inferValue([]any{"1", "true", "x"}))
	})

	t.Run("LeavesInputUntouched", func(t *testing.T) {
		input := map[string]any{"num": "5"}
		inferValue(input)
		assert.Equal(t, "5", input["num"])
	})

	t.Run("ResolvesJSONNumbers", func(t *testing.T) {
		assert.Equal(t, int64(7), inferValue(json.Number("7")))
		assert.Equal(t, 2.5, inferValue(json.Number("2.5")))
	})

	t.Run("PassesNativeScalarsThrough", func(t *testing.T) {
		assert.Equal(t, 42, inferValue(42))
		assert.Equal(t, true, inferValue(true))
	})
}

func TestApplyCoercion(t *testing.T) {
	t.Run("NoneReturnsRaw", func(t *testing.T) {
		value, err := applyCoercion("5", coerceRequest{})
		require.NoError(t, err)
		assert.Equal(t, "5", value)
	})

	t.Run("ExplicitConverts", func(t *testing.T) {
		value, err := applyCoercion("5", coerceRequest{mode: coerceExplicit, kind: KindInt})
		require.NoError(t, err)
		assert.Equal(t, int64(5), value)
	})

	t.Run("InferNeverFails", func(t *testing.T) {
		value, err := applyCoercion("blah", coerceRequest{mode: coerceInfer})
		require.NoError(t, err)
		assert.Equal(t, "blah", value)
	})
}
