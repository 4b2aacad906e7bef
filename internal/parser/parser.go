// Package parser turns JSON text into a value.Value tree by recursive descent.
//
// The grammar is small. Strings end at the next double quote
// and backslashes carry no meaning, numbers are any run of digits, '.' and
// '-' that strconv accepts, and the literals true, false and null are matched
// as plain prefixes. Parse ignores whatever follows the first complete value
// unless WithStrict is given.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/jacoelho/jsonq/internal/value"
)

// Parse parses the first JSON value in input.
// Strings in the returned tree are substrings of input.
func Parse(input string, opts ...Option) (value.Value, error) {
	o := newOptions(opts)
	p := parserState{maxDepth: o.maxDepth}

	v, rest, err := p.parseValue(strings.TrimSpace(input), 0)
	if err != nil {
		return nil, err
	}

	if o.strict && rest != "" {
		return nil, parseError(ErrTrailingInput, "unexpected %q after value", preview(rest))
	}

	return v, nil
}

// ParsePrefix parses one JSON value from the start of input and returns
// the input left after it. Leading whitespace is skipped, trailing
// whitespace is left in the remainder.
func ParsePrefix(input string, opts ...Option) (value.Value, string, error) {
	o := newOptions(opts)
	p := parserState{maxDepth: o.maxDepth}

	v, rest, err := p.parseValue(input, 0)
	if err != nil {
		return nil, "", err
	}
	return v, rest, nil
}

type parserState struct {
	maxDepth int
}

func (p *parserState) parseValue(input string, depth int) (value.Value, string, error) {
	input = trimLeft(input)

	switch {
	case strings.HasPrefix(input, `"`):
		s, rest, err := parseString(input)
		if err != nil {
			return nil, "", err
		}
		return value.String(s), rest, nil
	case strings.HasPrefix(input, "{"):
		return p.parseObject(input, depth+1)
	case strings.HasPrefix(input, "["):
		return p.parseArray(input, depth+1)
	case strings.HasPrefix(input, "true"):
		return value.Bool(true), input[len("true"):], nil
	case strings.HasPrefix(input, "false"):
		return value.Bool(false), input[len("false"):], nil
	case strings.HasPrefix(input, "null"):
		return value.Null{}, input[len("null"):], nil
	default:
		n, rest, err := parseNumber(input)
		if err != nil {
			return nil, "", err
		}
		return value.Number(n), rest, nil
	}
}

func (p *parserState) parseObject(input string, depth int) (value.Value, string, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, "", err
	}

	members := value.Object{}
	cursor := input[1:]

	for {
		cursor = trimLeft(cursor)
		if rest, ok := strings.CutPrefix(cursor, "}"); ok {
			return members, rest, nil
		}

		if !strings.HasPrefix(cursor, `"`) {
			return nil, "", parseError(ErrUnexpectedToken, "expected string key, found %q", preview(cursor))
		}
		key, rest, err := parseString(cursor)
		if err != nil {
			return nil, "", err
		}

		rest, ok := strings.CutPrefix(trimLeft(rest), ":")
		if !ok {
			return nil, "", parseError(ErrMissingSeparator, "expected ':' after key %q", key)
		}

		v, rest, err := p.parseValue(rest, depth)
		if err != nil {
			return nil, "", err
		}
		members = append(members, value.Member{Key: key, Value: v})

		rest = trimLeft(rest)
		if next, ok := strings.CutPrefix(rest, ","); ok {
			cursor = next
			continue
		}
		if next, ok := strings.CutPrefix(rest, "}"); ok {
			return members, next, nil
		}
		return nil, "", parseError(ErrMissingSeparator, "expected ',' or '}', found %q", preview(rest))
	}
}

func (p *parserState) parseArray(input string, depth int) (value.Value, string, error) {
	if err := p.checkDepth(depth); err != nil {
		return nil, "", err
	}

	elements := value.Array{}
	cursor := input[1:]

	for {
		cursor = trimLeft(cursor)
		if rest, ok := strings.CutPrefix(cursor, "]"); ok {
			return elements, rest, nil
		}

		v, rest, err := p.parseValue(cursor, depth)
		if err != nil {
			return nil, "", err
		}
		elements = append(elements, v)

		rest = trimLeft(rest)
		if next, ok := strings.CutPrefix(rest, ","); ok {
			cursor = next
			continue
		}
		if next, ok := strings.CutPrefix(rest, "]"); ok {
			return elements, next, nil
		}
		return nil, "", parseError(ErrMissingSeparator, "expected ',' or ']', found %q", preview(rest))
	}
}

func (p *parserState) checkDepth(depth int) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return parseError(ErrMaxDepth, "limit is %d", p.maxDepth)
	}
	return nil
}

// parseString expects input to start with a quote and returns the text up
// to the next quote, without interpreting backslashes.
func parseString(input string) (string, string, error) {
	body := input[1:]
	end := strings.IndexByte(body, '"')
	if end < 0 {
		return "", "", parseError(ErrUnterminatedString, "no closing quote for %q", preview(input))
	}
	return body[:end], body[end+1:], nil
}

func parseNumber(input string) (float64, string, error) {
	end := 0
	for end < len(input) && isNumberByte(input[end]) {
		end++
	}

	literal := input[:end]
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if literal == "" {
			return 0, "", parseError(ErrInvalidNumber, "expected a value, found %q", preview(input))
		}
		return 0, "", parseError(ErrInvalidNumber, "%q", literal)
	}
	return n, input[end:], nil
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

const previewLen = 16

// preview shortens input for error messages.
func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}
