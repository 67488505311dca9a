package service

import (
	"errors"
	"fmt"
)

// ErrInvalid marks malformed or unknown webhook payloads.
var ErrInvalid = errors.New("invalid request")

// invalidf wraps ErrInvalid with a caller-facing reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
