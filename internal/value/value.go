// Package value defines the tree produced by parsing a JSON document.
//
// String payloads and object keys are substrings of the parsed input. They
// share its backing memory, so a tree keeps the whole input reachable for as
// long as any of its strings are referenced. Trees are read-only: nothing in
// this package mutates a Value after construction.
package value

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. The set of implementations is closed:
// String, Number, Bool, Null, Array and Object.
type Value interface {
	Kind() Kind
	// String renders the value in compact form.
	String() string
	sealed()
}

// String is the raw text between two quotes, escapes left undecoded.
type String string

// Number holds every JSON number as a float64.
type Number float64

// Bool is a JSON true or false.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

// Array elements keep their textual order.
type Array []Value

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object members keep their textual order and duplicate keys are retained.
type Object []Member

func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (String) sealed() {}
func (Number) sealed() {}
func (Bool) sealed()   {}
func (Null) sealed()   {}
func (Array) sealed()  {}
func (Object) sealed() {}
