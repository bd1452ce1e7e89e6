package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func entryFromYAML(t *testing.T, input string) Entry {
	t.Helper()
	var entry Entry
	require.NoError(t, yaml.Unmarshal([]byte(input), &entry))
	return entry
}

func requireParseError(t *testing.T, err error, code Code) *ParseError {
	t.Helper()
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, code, parseErr.Code)
	return parseErr
}

func TestParseEntry_Scalars(t *testing.T) {
	t.Run("Should parse a string entry", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "string", "value": "hello"})
		require.NoError(t, err)
		assert.Equal(t, String("hello"), got)
	})

	t.Run("Should parse an integer entry", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "integer", "value": 42})
		require.NoError(t, err)
		assert.Equal(t, Integer(42), got)
	})

	t.Run("Should accept the int64 extremes", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "integer", "value": int64(math.MaxInt64)})
		require.NoError(t, err)
		assert.Equal(t, Integer(math.MaxInt64), got)

		got, err = ParseEntry(Entry{"type": "integer", "value": int64(math.MinInt64)})
		require.NoError(t, err)
		assert.Equal(t, Integer(math.MinInt64), got)
	})

	t.Run("Should reject a non-numeric integer value", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "integer", "value": "42"})
		requireParseError(t, err, CodeInvalidValue)
	})

	t.Run("Should reject a fractional value for integer", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "integer", "value": 1.5})
		requireParseError(t, err, CodeInvalidValue)
	})

	t.Run("Should reject an out-of-range unsigned value for integer", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "integer", "value": uint64(math.MaxUint64)})
		requireParseError(t, err, CodeInvalidValue)
	})

	t.Run("Should parse a float entry", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "float", "value": 2.75})
		require.NoError(t, err)
		assert.Equal(t, Float(2.75), got)
	})

	t.Run("Should accept a whole number for float", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "float", "value": 3})
		require.NoError(t, err)
		assert.Equal(t, Float(3), got)
	})

	t.Run("Should parse a boolean entry", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "boolean", "value": true})
		require.NoError(t, err)
		assert.Equal(t, Bool(true), got)
	})

	t.Run("Should reject a string value for boolean", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "boolean", "value": "true"})
		requireParseError(t, err, CodeInvalidValue)
	})

	t.Run("Should parse null regardless of other fields", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "null", "value": "ignored"})
		require.NoError(t, err)
		assert.Equal(t, Null{}, got)
	})

	t.Run("Should require the value field for scalar types", func(t *testing.T) {
		for _, typ := range []string{"string", "integer", "float", "boolean"} {
			_, err := ParseEntry(Entry{"type": typ})
			parseErr := requireParseError(t, err, CodeMissingField)
			assert.Equal(t, "value", parseErr.Field)
		}
	})
}

func TestParseEntry_TypeTag(t *testing.T) {
	t.Run("Should require the type field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"value": "x"})
		parseErr := requireParseError(t, err, CodeMissingField)
		assert.Equal(t, "type", parseErr.Field)
	})

	t.Run("Should reject a non-string type field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": 7})
		requireParseError(t, err, CodeInvalidType)
	})

	t.Run("Should reject an unknown type tag", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "unsupported"})
		parseErr := requireParseError(t, err, CodeInvalidTypeValue)
		assert.Equal(t, "unsupported", parseErr.Got)
	})
}

func TestParseEntry_Source(t *testing.T) {
	t.Run("Should map execute_time", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "source", "source": "execute_time"})
		require.NoError(t, err)
		assert.Equal(t, ExecuteDate, got)
	})

	t.Run("Should map last_execute_time", func(t *testing.T) {
		got, err := ParseEntry(Entry{"type": "source", "source": "last_execute_time"})
		require.NoError(t, err)
		assert.Equal(t, LastExecuteDate, got)
	})

	t.Run("Should require the source field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "source"})
		parseErr := requireParseError(t, err, CodeMissingField)
		assert.Equal(t, "source", parseErr.Field)
	})

	t.Run("Should reject a non-string source field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "source", "source": 1})
		requireParseError(t, err, CodeInvalidSource)
	})

	t.Run("Should reject an unknown source variant", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "source", "source": "tomorrow"})
		parseErr := requireParseError(t, err, CodeInvalidSourceValue)
		assert.Equal(t, "tomorrow", parseErr.Got)
	})
}

func TestParseEntry_Containers(t *testing.T) {
	t.Run("Should parse a nested object with an array", func(t *testing.T) {
		entry := entryFromYAML(t, `
type: object
properties:
  a:
    type: array
    items:
      - type: boolean
        value: true
      - type: source
        source: execute_time
`)
		got, err := ParseEntry(entry)
		require.NoError(t, err)
		assert.Equal(t, Object{"a": Array{Bool(true), ExecuteDate}}, got)
	})

	t.Run("Should parse an empty object", func(t *testing.T) {
		got, err := ParseEntry(entryFromYAML(t, "type: object\nproperties: {}\n"))
		require.NoError(t, err)
		assert.Equal(t, Object{}, got)
	})

	t.Run("Should require the properties field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "object"})
		parseErr := requireParseError(t, err, CodeMissingField)
		assert.Equal(t, "properties", parseErr.Field)
	})

	t.Run("Should reject a sequence for properties", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "object", "properties": []any{}})
		requireParseError(t, err, CodeInvalidProperties)
	})

	t.Run("Should reject a scalar property entry", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "object", "properties": map[string]any{"a": "oops"}})
		requireParseError(t, err, CodeInvalidProperties)
	})

	t.Run("Should require the items field", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "array"})
		parseErr := requireParseError(t, err, CodeMissingField)
		assert.Equal(t, "items", parseErr.Field)
	})

	t.Run("Should reject a mapping for items", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "array", "items": map[string]any{}})
		requireParseError(t, err, CodeInvalidItems)
	})

	t.Run("Should reject a scalar array element", func(t *testing.T) {
		_, err := ParseEntry(Entry{"type": "array", "items": []any{"oops"}})
		requireParseError(t, err, CodeInvalidItems)
	})

	t.Run("Should preserve element order in arrays", func(t *testing.T) {
		entry := entryFromYAML(t, `
type: array
items:
  - type: integer
    value: 1
  - type: integer
    value: 2
  - type: integer
    value: 3
`)
		got, err := ParseEntry(entry)
		require.NoError(t, err)
		assert.Equal(t, Array{Integer(1), Integer(2), Integer(3)}, got)
	})

	t.Run("Should propagate a nested failure unchanged", func(t *testing.T) {
		entry := entryFromYAML(t, `
type: object
properties:
  inner:
    type: array
    items:
      - type: source
        source: yesterday
`)
		_, err := ParseEntry(entry)
		parseErr := requireParseError(t, err, CodeInvalidSourceValue)
		assert.Equal(t, "yesterday", parseErr.Got)
	})
}

func TestParseBasicEntry(t *testing.T) {
	t.Run("Should parse the scalar-or-source vocabulary", func(t *testing.T) {
		cases := map[string]struct {
			entry    Entry
			expected Value
		}{
			"string":  {Entry{"type": "string", "value": "v"}, String("v")},
			"integer": {Entry{"type": "integer", "value": 10}, Integer(10)},
			"float":   {Entry{"type": "float", "value": 0.5}, Float(0.5)},
			"source":  {Entry{"type": "source", "source": "last_execute_time"}, LastExecuteDate},
		}
		for name, tc := range cases {
			got, err := ParseBasicEntry(tc.entry)
			require.NoError(t, err, name)
			assert.Equal(t, tc.expected, got, name)
		}
	})

	t.Run("Should reject object even with valid properties", func(t *testing.T) {
		_, err := ParseBasicEntry(Entry{"type": "object", "properties": map[string]any{}})
		parseErr := requireParseError(t, err, CodeInvalidTypeValue)
		assert.Equal(t, "object", parseErr.Got)
	})

	t.Run("Should reject array, boolean, and null", func(t *testing.T) {
		for _, typ := range []string{"array", "boolean", "null"} {
			_, err := ParseBasicEntry(Entry{"type": typ})
			parseErr := requireParseError(t, err, CodeInvalidTypeValue)
			assert.Equal(t, typ, parseErr.Got)
		}
	})

	t.Run("Should reject an unknown type tag", func(t *testing.T) {
		_, err := ParseBasicEntry(Entry{"type": "unsupported"})
		parseErr := requireParseError(t, err, CodeInvalidTypeValue)
		assert.Equal(t, "unsupported", parseErr.Got)
	})

	t.Run("Should require the type field", func(t *testing.T) {
		_, err := ParseBasicEntry(Entry{})
		parseErr := requireParseError(t, err, CodeMissingField)
		assert.Equal(t, "type", parseErr.Field)
	})
}

func TestParseError_Error(t *testing.T) {
	t.Run("Should name the missing field", func(t *testing.T) {
		assert.Equal(t, `missing field "type"`, errMissingField("type").Error())
	})

	t.Run("Should name the rejected variant", func(t *testing.T) {
		err := errUnknownVariant(CodeInvalidSourceValue, "tomorrow")
		assert.Contains(t, err.Error(), `"tomorrow"`)
	})
}
