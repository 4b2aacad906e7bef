package value

import (
	"strconv"
	"strings"
)

// indentUnit is repeated once per nesting level by Pretty.
const indentUnit = "  "

// Compact renders v on a single line without inserted whitespace.
// Strings are written back between quotes exactly as they were read.
func Compact(v Value) string {
	return string(appendCompact(nil, v))
}

func (s String) String() string { return Compact(s) }
func (n Number) String() string { return Compact(n) }
func (b Bool) String() string   { return Compact(b) }
func (n Null) String() string   { return Compact(n) }
func (a Array) String() string  { return Compact(a) }
func (o Object) String() string { return Compact(o) }

func appendCompact(dst []byte, v Value) []byte {
	switch current := v.(type) {
	case Array:
		dst = append(dst, '[')
		for i, elem := range current {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendCompact(dst, elem)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, member := range current {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendQuoted(dst, member.Key)
			dst = append(dst, ':')
			dst = appendCompact(dst, member.Value)
		}
		return append(dst, '}')
	default:
		return appendScalar(dst, v)
	}
}

func appendScalar(dst []byte, v Value) []byte {
	switch current := v.(type) {
	case String:
		return appendQuoted(dst, string(current))
	case Number:
		return strconv.AppendFloat(dst, float64(current), 'f', -1, 64)
	case Bool:
		return strconv.AppendBool(dst, bool(current))
	case Null:
		return append(dst, "null"...)
	default:
		panic("value: unknown variant")
	}
}

func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, s...)
	return append(dst, '"')
}

// Pretty renders v over multiple lines. indent is the nesting level the
// value starts at: element lines get indent+1 units of two spaces and the
// closing bracket gets indent units. The opening bracket is never indented,
// so callers place it themselves.
func Pretty(v Value, indent int) string {
	var b strings.Builder
	writePretty(&b, v, max(indent, 0))
	return b.String()
}

func writePretty(b *strings.Builder, v Value, indent int) {
	switch current := v.(type) {
	case Array:
		b.WriteString("[\n")
		for i, elem := range current {
			b.WriteString(strings.Repeat(indentUnit, indent+1))
			writePretty(b, elem, indent+1)
			if i < len(current)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indentUnit, indent))
		b.WriteByte(']')
	case Object:
		b.WriteString("{\n")
		for i, member := range current {
			b.WriteString(strings.Repeat(indentUnit, indent+1))
			b.Write(appendQuoted(nil, member.Key))
			b.WriteString(": ")
			writePretty(b, member.Value, indent+1)
			if i < len(current)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indentUnit, indent))
		b.WriteByte('}')
	default:
		b.Write(appendScalar(nil, v))
	}
}
