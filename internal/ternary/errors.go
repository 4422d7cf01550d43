package ternary

import "errors"

var (
	// ErrEmptyValues indicates a heatmap was requested with no values.
	ErrEmptyValues = errors.New("ternary: empty value map")

	// ErrUnknownStyle indicates a heatmap style other than triangular or hexagonal.
	ErrUnknownStyle = errors.New("ternary: unknown heatmap style")

	// ErrInvalidSteps indicates a lattice resolution below 1.
	ErrInvalidSteps = errors.New("ternary: steps must be at least 1")
)
