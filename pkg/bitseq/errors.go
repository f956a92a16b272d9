package bitseq

import "errors"

var (
	// ErrInvalidInput is returned when a negative integer is given where a
	// non-negative value is required, or when a value does not fit the
	// requested width.
	ErrInvalidInput = errors.New("bitseq: invalid input")

	// ErrLengthMismatch is returned by element-wise binary operations on
	// sequences of unequal length.
	ErrLengthMismatch = errors.New("bitseq: length mismatch")

	// ErrUnalignedLength is returned when byte packing is requested on a
	// sequence whose length is not a multiple of 8.
	ErrUnalignedLength = errors.New("bitseq: length not a multiple of 8")

	// ErrEmptySequence is returned by removal operations on an empty sequence.
	ErrEmptySequence = errors.New("bitseq: empty sequence")

	// ErrIndexOutOfRange is returned by Slice for invalid bounds.
	ErrIndexOutOfRange = errors.New("bitseq: index out of range")
)
