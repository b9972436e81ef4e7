package ui

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ui package.
var (
	// ErrTypeMismatch is returned when a value's kind differs from the
	// property's declared kind.
	ErrTypeMismatch = errors.New("ui: property type mismatch")

	// ErrUnknownProperty is returned for a property read or written before
	// the store is initialized, or for a tag outside the property table.
	ErrUnknownProperty = errors.New("ui: unknown property")

	// ErrNonFinite is returned when a value holds NaN or an infinity.
	ErrNonFinite = errors.New("ui: non-finite value")

	// ErrInvalidName is returned when an element or container name is empty.
	ErrInvalidName = errors.New("ui: invalid name")

	// ErrDuplicateName is returned when a name is already used in its scope.
	ErrDuplicateName = errors.New("ui: duplicate name")

	// ErrAttached is returned when adding an element that already belongs
	// to a container.
	ErrAttached = errors.New("ui: element already attached")

	// ErrResourceMissing marks a texture or font that could not be resolved.
	// The element draws a placeholder and keeps the error in ResourceErr.
	ErrResourceMissing = errors.New("ui: resource missing")

	// ErrNotFound is returned when a named element or layer does not exist.
	ErrNotFound = errors.New("ui: not found")

	// ErrClosed is returned by an Engine after Close.
	ErrClosed = errors.New("ui: engine closed")
)

// PropertyError records a failed property operation.
type PropertyError struct {
	Op       string // "get" or "set"
	Property Property
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
