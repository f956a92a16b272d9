package lfsr

import "errors"

var (
	// ErrInvalidStateLength is returned when a register is constructed with a
	// state whose bit count does not equal the polynomial's degree.
	ErrInvalidStateLength = errors.New("lfsr: state length does not match polynomial degree")

	// ErrInsufficientSeedLength is returned when a combined generator's seed
	// is shorter than the sum of its sub-register degrees.
	ErrInsufficientSeedLength = errors.New("lfsr: seed too short")
)
