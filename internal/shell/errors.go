package shell

import (
	"errors"
	"fmt"
)

// ErrNoProfile is returned by Setup when no profile was chosen or typed in.
var ErrNoProfile = errors.New("no shell profile selected")

// IOError wraps a filesystem failure while installing the shorthand.
type IOError struct {
	// Op describes what was being done, e.g. "write script".
	Op string
	// Path is the file involved.
	Path string
	// Reason is the underlying error.
	Reason error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Reason)
}

func (e *IOError) Unwrap() error {
	return e.Reason
}
