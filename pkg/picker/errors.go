package picker

import (
	"errors"
	"fmt"
)

// ErrUnavailable signals that the picker binary could not be started (not
// installed, not executable).
var ErrUnavailable = errors.New("picker: unavailable")

// ExitError reports a picker exit code outside the success/empty/abort
// contract.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("picker: unexpected exit status %d", e.Code)
}
