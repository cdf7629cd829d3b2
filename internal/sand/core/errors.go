package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBoundsWrite is matched by every failed write to a coordinate outside the grid.
	ErrOutOfBoundsWrite = errors.New("grid: write out of bounds")

	// ErrInvalidMaterial is returned when OutOfBounds is written or painted.
	ErrInvalidMaterial = errors.New("grid: out_of_bounds cannot be stored")

	// ErrDensityRange is returned for a brush density outside [0, 100].
	ErrDensityRange = errors.New("brush: density must be within [0, 100]")
)

// OutOfBoundsError reports the coordinate a write was rejected for.
type OutOfBoundsError struct {
	Point Point
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("grid: write at %v outside %dx%d grid", e.Point, e.Size, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfBoundsWrite.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBoundsWrite
}
