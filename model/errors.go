// Package model defines the static data entities of a 3D framed structure:
// nodes, materials, sections, bars, supports and load cases.
package model

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the taxonomy of construction and solve-time
// failures. Compare with errors.Is; wrapErr attaches context while keeping
// the sentinel matchable.
var (
	ErrInvalidGeometry     = errors.New("invalid geometry")
	ErrInvalidSection      = errors.New("invalid section")
	ErrInvalidMaterial     = errors.New("invalid material")
	ErrInvalidLoadPosition = errors.New("invalid load position")
	ErrInvalidSupport      = errors.New("invalid support")
	ErrSingularMatrix      = errors.New("singular matrix")
	ErrUnknownEntity       = errors.New("unknown entity")
)

// wrapErr attaches a formatted message to a sentinel so callers can both
// read a useful message and errors.Is against the taxonomy.
func wrapErr(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}

// WrapUnknownEntity builds an ErrUnknownEntity error naming the entity that
// a query could not resolve, e.g. WrapUnknownEntity("node %q", name).
func WrapUnknownEntity(format string, args ...interface{}) error {
	return wrapErr(ErrUnknownEntity, format, args...)
}
