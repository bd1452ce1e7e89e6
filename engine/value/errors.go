package value

import "fmt"

// Code classifies entry parse failures.
type Code string

const (
	CodeMissingField       Code = "missing_field"
	CodeInvalidType        Code = "invalid_type"
	CodeInvalidValue       Code = "invalid_value"
	CodeInvalidItems       Code = "invalid_items"
	CodeInvalidProperties  Code = "invalid_properties"
	CodeInvalidSource      Code = "invalid_source"
	CodeInvalidSourceValue Code = "invalid_source_value"
	CodeInvalidTypeValue   Code = "invalid_type_value"
)

// ParseError reports the first failure encountered while parsing a tagged
// entry. Field names the missing field for CodeMissingField; Got carries the
// rejected variant string for the unknown-variant codes.
type ParseError struct {
	Code  Code
	Field string
	Got   string
}

func (e *ParseError) Error() string {
	switch e.Code {
	case CodeMissingField:
		return fmt.Sprintf("missing field %q", e.Field)
	case CodeInvalidType:
		return "invalid 'type' tag, should be a string"
	case CodeInvalidValue:
		return "invalid 'value' tag"
	case CodeInvalidItems:
		return "invalid 'items' tag, should be a sequence"
	case CodeInvalidProperties:
		return "invalid 'properties' tag, should be a map"
	case CodeInvalidSource:
		return "invalid 'source' tag, should be a string"
	case CodeInvalidSourceValue:
		return fmt.Sprintf("unknown source %q, expected one of [execute_time, last_execute_time]", e.Got)
	case CodeInvalidTypeValue:
		return fmt.Sprintf("unknown type %q", e.Got)
	default:
		return fmt.Sprintf("invalid entry: %s", e.Code)
	}
}

func errMissingField(field string) *ParseError {
	return &ParseError{Code: CodeMissingField, Field: field}
}

func errInvalid(code Code) *ParseError {
	return &ParseError{Code: code}
}

func errUnknownVariant(code Code, got string) *ParseError {
	return &ParseError{Code: code, Got: got}
}
