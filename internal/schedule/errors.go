package schedule

import "errors"

var (
	// ErrInvalidInput indicates a caller-supplied value the engine refuses
	// to coerce: a non-positive estimate or a malformed clock time.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigIncomplete indicates a weekday or priority missing from the
	// work configuration. Fatal at load time; estimation functions assume
	// a fully populated configuration.
	ErrConfigIncomplete = errors.New("work configuration incomplete")
)
