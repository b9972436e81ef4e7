package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFamilyNotFound is returned when no font is registered for a family.
	ErrFamilyNotFound = errors.New("text: font family not found")

	// ErrInvalidSize is returned for non-positive face sizes.
	ErrInvalidSize = errors.New("text: invalid face size")

	// ErrClosed is returned by a Registry after Close.
	ErrClosed = errors.New("text: registry closed")
)
