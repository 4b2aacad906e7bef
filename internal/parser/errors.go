package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedToken indicates input that cannot start the expected construct.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnterminatedString indicates an opening quote without a closing one.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrInvalidNumber indicates a numeric run that is not a valid float.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrMissingSeparator indicates a missing ':', ',' or closing bracket.
	ErrMissingSeparator = errors.New("missing separator")

	// ErrMaxDepth indicates nesting deeper than the configured limit.
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")

	// ErrTrailingInput indicates non-whitespace after the value in strict mode.
	ErrTrailingInput = errors.New("trailing input")
)

func parseError(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
