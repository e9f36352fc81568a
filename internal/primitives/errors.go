package primitives

import (
	"errors"
	"fmt"
)

// ErrInvalidArea is returned, in development mode, for any area outside the
// closed set.
var ErrInvalidArea = errors.New("invalid layout focus area")

// InvalidAreaError carries the rejected area.
type InvalidAreaError struct {
	Area Area
}

func (e *InvalidAreaError) Error() string {
	return fmt.Sprintf("%q is not a valid layout focus area", string(e.Area))
}

func (e *InvalidAreaError) Unwrap() error {
	return ErrInvalidArea
}
