// Package resolver turns user-supplied paths into canonical absolute paths.
//
// Canonicalization resolves the path against the working directory, removes
// "." and ".." components and follows every symlink. The path must exist;
// there is no tilde expansion and nothing is created.
package resolver

import (
	"fmt"
	"path/filepath"

	"prtl/pkg/logging"
)

// InvalidPathError indicates a path that cannot be canonicalized,
// most commonly because it does not exist.
type InvalidPathError struct {
	// Input is the path as the user supplied it.
	Input string
	// Reason is the underlying filesystem error.
	Reason error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Path %s is invalid.", e.Input)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Reason
}

// Canonicalize resolves input to an absolute path with all symlinks and
// relative components resolved.
func Canonicalize(input string) (string, error) {
	if input == "" {
		return "", &InvalidPathError{Input: input, Reason: fmt.Errorf("empty path")}
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", &InvalidPathError{Input: input, Reason: err}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		logging.Debug("Resolver", "Cannot canonicalize %q: %v", input, err)
		return "", &InvalidPathError{Input: input, Reason: err}
	}

	logging.Debug("Resolver", "Resolved %q to %s", input, canonical)
	return canonical, nil
}
