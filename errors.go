package coerce

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single failure kind reported by the As* tier.
// Use errors.Is to detect it.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(target string, value interface{}) error {
	return fmt.Errorf("%w: cannot coerce %T to %s", ErrInvalidArgument, value, target)
}
