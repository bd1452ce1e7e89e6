package value

// Kind discriminates the closed set of Value variants.
type Kind string

const (
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindString  Kind = "string"
	KindBool    Kind = "boolean"
	KindFloat   Kind = "float"
	KindInteger Kind = "integer"
	KindNull    Kind = "null"
	KindSource  Kind = "source"
)

// Value is a typed configuration value built from a tagged document entry.
// The set of implementations is closed; a Value tree is immutable once built.
type Value interface {
	Kind() Kind
}

type (
	// Array is an ordered sequence of values.
	Array []Value
	// Object maps unique string keys to values; order is irrelevant.
	Object map[string]Value
	// String is a literal text value.
	String string
	// Bool is a literal boolean value.
	Bool bool
	// Float is a 64-bit floating point value.
	Float float64
	// Integer is a 64-bit signed integer value.
	Integer int64
	// Null is the explicit null value.
	Null struct{}
)

func (Array) Kind() Kind   { return KindArray }
func (Object) Kind() Kind  { return KindObject }
func (String) Kind() Kind  { return KindString }
func (Bool) Kind() Kind    { return KindBool }
func (Float) Kind() Kind   { return KindFloat }
func (Integer) Kind() Kind { return KindInteger }
func (Null) Kind() Kind    { return KindNull }

// Source denotes a value that is not known until execution time. It only ever
// appears as a terminal leaf.
type Source string

const (
	// ExecuteDate resolves to the timestamp of the current run.
	ExecuteDate Source = "execute_time"
	// LastExecuteDate resolves to the timestamp of the previous run.
	LastExecuteDate Source = "last_execute_time"
)

func (Source) Kind() Kind { return KindSource }
