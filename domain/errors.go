package domain

import (
	"errors"
	"fmt"
)

// ErrPackageNotFound signals that a registry affirmatively reported the
// package does not exist. This is a lookup outcome, not a transport failure,
// and callers must be able to tell the two apart with errors.Is.
var ErrPackageNotFound = errors.New("package not found in registry")

// ParsingError indicates a manifest file exists but could not be structurally
// interpreted. It is isolated to one (directory, environment) pair.
type ParsingError struct {
	File string
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }

// NetworkError indicates a registry was unreachable, timed out, or returned
// an unusable response for a single package lookup.
type NetworkError struct {
	Package string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch latest version for %s: %v", e.Package, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
