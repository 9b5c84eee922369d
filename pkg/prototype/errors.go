package prototype

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry lookups and duplication.
var (
	// ErrNotFound indicates no template is registered under the requested id.
	ErrNotFound = errors.New("prototype not found")

	// ErrUnclonable indicates a value has no duplication semantics.
	ErrUnclonable = errors.New("value cannot be cloned")

	// ErrTypeMismatch indicates a clone or template is not of the requested type.
	ErrTypeMismatch = errors.New("prototype type mismatch")
)

// NotFoundError reports a lookup of an id that was never registered.
type NotFoundError struct {
	// Registry is the name of the registrar that was queried.
	Registry string
	// ID is the requested identifier, formatted with %v.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Registry != "" {
		return fmt.Sprintf("registry %s: no prototype registered under %q", e.Registry, e.ID)
	}
	return fmt.Sprintf("no prototype registered under %q", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnclonableError is returned by clone hooks for values such as open
// handles that must be neither shared nor duplicated.
type UnclonableError struct {
	// Type is the Go type of the value.
	Type string
	// Reason says why the value cannot be duplicated.
	Reason string
}

// Error implements the error interface.
func (e *UnclonableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s cannot be cloned", e.Type)
	}
	return fmt.Sprintf("%s cannot be cloned: %s", e.Type, e.Reason)
}

// Is reports whether target is ErrUnclonable.
func (e *UnclonableError) Is(target error) bool {
	return target == ErrUnclonable
}

// TypeMismatchError reports a value whose dynamic type does not match
// the type the caller asked for.
type TypeMismatchError struct {
	Want string
	Got  string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("prototype type mismatch: want %s, got %s", e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// CloneError wraps a failure somewhere inside the value being duplicated.
// Path locates the failing field, e.g. ".Children[2].Handle".
type CloneError struct {
	// Path is the field path from the root value. Empty means the root.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *CloneError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("clone: %v", e.Err)
	}
	return fmt.Sprintf("clone %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CloneError) Unwrap() error {
	return e.Err
}

// atPath prefixes seg onto the path of err, wrapping it in a CloneError
// the first time.
func atPath(seg string, err error) error {
	var ce *CloneError
	if errors.As(err, &ce) {
		ce.Path = seg + ce.Path
		return ce
	}
	return &CloneError{Path: seg, Err: err}
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnclonable reports whether err is or wraps ErrUnclonable.
func IsUnclonable(err error) bool {
	return errors.Is(err, ErrUnclonable)
}

// NewUnclonableError creates an UnclonableError for the type of v.
func NewUnclonableError(v any, reason string) error {
	return &UnclonableError{Type: fmt.Sprintf("%T", v), Reason: reason}
}
