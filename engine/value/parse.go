package value

import "math"

// Tagged entries carry an explicit type discriminator plus type-specific
// companion fields.
const (
	typeTag       = "type"
	propertiesTag = "properties"
	itemsTag      = "items"
	valueTag      = "value"
	sourceTag     = "source"
)

// Entry is a tagged mapping as produced by a generic YAML decode.
type Entry = map[string]any

// ParseEntry parses a tagged entry in full mode: all eight type tags are
// accepted. Parsing is fail-fast; the first error in a recursive descent is
// returned verbatim and no partial value is produced.
func ParseEntry(entry Entry) (Value, error) {
	entryType, err := getType(entry)
	if err != nil {
		return nil, err
	}
	switch entryType {
	case "object":
		return parseObject(entry)
	case "array":
		return parseArray(entry)
	case "source":
		return parseSource(entry)
	case "integer":
		return parseInteger(entry)
	case "float":
		return parseFloat(entry)
	case "string":
		return parseString(entry)
	case "boolean":
		return parseBool(entry)
	case "null":
		return Null{}, nil
	default:
		return nil, errUnknownVariant(CodeInvalidTypeValue, entryType)
	}
}

// ParseBasicEntry parses a tagged entry in restricted mode: only scalar types
// and source are accepted. Structured, boolean, and null entries are rejected
// because a header value must be a single textual value or one resolved at
// send time.
func ParseBasicEntry(entry Entry) (Value, error) {
	entryType, err := getType(entry)
	if err != nil {
		return nil, err
	}
	switch entryType {
	case "source":
		return parseSource(entry)
	case "integer":
		return parseInteger(entry)
	case "float":
		return parseFloat(entry)
	case "string":
		return parseString(entry)
	default:
		return nil, errUnknownVariant(CodeInvalidTypeValue, entryType)
	}
}

func getType(entry Entry) (string, error) {
	raw, ok := entry[typeTag]
	if !ok {
		return "", errMissingField(typeTag)
	}
	entryType, ok := raw.(string)
	if !ok {
		return "", errInvalid(CodeInvalidType)
	}
	return entryType, nil
}

func parseObject(entry Entry) (Value, error) {
	raw, ok := entry[propertiesTag]
	if !ok {
		return nil, errMissingField(propertiesTag)
	}
	properties, ok := raw.(map[string]any)
	if !ok {
		return nil, errInvalid(CodeInvalidProperties)
	}
	object := make(Object, len(properties))
	for key, rawChild := range properties {
		child, ok := rawChild.(map[string]any)
		if !ok {
			return nil, errInvalid(CodeInvalidProperties)
		}
		parsed, err := ParseEntry(child)
		if err != nil {
			return nil, err
		}
		object[key] = parsed
	}
	return object, nil
}

func parseArray(entry Entry) (Value, error) {
	raw, ok := entry[itemsTag]
	if !ok {
		return nil, errMissingField(itemsTag)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, errInvalid(CodeInvalidItems)
	}
	array := make(Array, 0, len(items))
	for _, rawChild := range items {
		child, ok := rawChild.(map[string]any)
		if !ok {
			return nil, errInvalid(CodeInvalidItems)
		}
		parsed, err := ParseEntry(child)
		if err != nil {
			return nil, err
		}
		array = append(array, parsed)
	}
	return array, nil
}

func parseSource(entry Entry) (Value, error) {
	raw, ok := entry[sourceTag]
	if !ok {
		return nil, errMissingField(sourceTag)
	}
	source, ok := raw.(string)
	if !ok {
		return nil, errInvalid(CodeInvalidSource)
	}
	switch source {
	case string(ExecuteDate):
		return ExecuteDate, nil
	case string(LastExecuteDate):
		return LastExecuteDate, nil
	default:
		return nil, errUnknownVariant(CodeInvalidSourceValue, source)
	}
}

// parseInteger accepts any numeric scalar exactly representable as int64.
// Floats with a fractional part and out-of-range values are rejected.
func parseInteger(entry Entry) (Value, error) {
	raw, ok := entry[valueTag]
	if !ok {
		return nil, errMissingField(valueTag)
	}
	switch v := raw.(type) {
	case int:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, errInvalid(CodeInvalidValue)
		}
		return Integer(v), nil
	default:
		return nil, errInvalid(CodeInvalidValue)
	}
}

func parseFloat(entry Entry) (Value, error) {
	raw, ok := entry[valueTag]
	if !ok {
		return nil, errMissingField(valueTag)
	}
	switch v := raw.(type) {
	case float64:
		return Float(v), nil
	case int:
		return Float(v), nil
	case int64:
		return Float(v), nil
	case uint64:
		return Float(v), nil
	default:
		return nil, errInvalid(CodeInvalidValue)
	}
}

func parseString(entry Entry) (Value, error) {
	raw, ok := entry[valueTag]
	if !ok {
		return nil, errMissingField(valueTag)
	}
	v, ok := raw.(string)
	if !ok {
		return nil, errInvalid(CodeInvalidValue)
	}
	return String(v), nil
}

func parseBool(entry Entry) (Value, error) {
	raw, ok := entry[valueTag]
	if !ok {
		return nil, errMissingField(valueTag)
	}
	v, ok := raw.(bool)
	if !ok {
		return nil, errInvalid(CodeInvalidValue)
	}
	return Bool(v), nil
}
