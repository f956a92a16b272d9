package bitseq

import (
	"fmt"
	"math/big"
	"strings"
)

// BitOrder selects how bits are read from (or packed into) a byte buffer.
type BitOrder int

const (
	// MSBFirst reads each byte from its most significant bit down to its
	// least significant bit. This matches reading the buffer as a big-endian
	// number and is the right choice for numeric data.
	MSBFirst BitOrder = iota

	// LSBFirst reads each byte from its least significant bit up, across the
	// whole buffer. This is the temporal order of a transmitted keystream and
	// is the convention the known-plaintext attack operates in.
	LSBFirst
)

// Sequence is an ordered, mutable sequence of binary values. Each element is
// exactly 0 or 1. The zero value is not usable; construct sequences with New
// or one of the From* factories.
type Sequence struct {
	bits []byte
}

// New returns an empty Sequence.
func New() *Sequence {
	return &Sequence{bits: []byte{}}
}

// FromBits returns a Sequence holding the given bits in order. It panics if
// any element is not 0 or 1; passing a non-bit value is a programmer error,
// not an input condition.
func FromBits(bits []byte) *Sequence {
	for i, b := range bits {
		if b > 1 {
			panic(fmt.Sprintf("bitseq: element %d is %d, want 0 or 1", i, b))
		}
	}
	s := &Sequence{bits: make([]byte, len(bits))}
	copy(s.bits, bits)
	return s
}

// FromBools returns a Sequence holding the given bits in order, true mapping
// to 1.
func FromBools(bits []bool) *Sequence {
	s := &Sequence{bits: make([]byte, len(bits))}
	for i, b := range bits {
		if b {
			s.bits[i] = 1
		}
	}
	return s
}

// FromInt returns the minimal big-endian binary representation of v, with no
// leading-zero padding. FromInt(0) is the single bit 0.
//
// Returns ErrInvalidInput if v is negative.
func FromInt(v int64) (*Sequence, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: negative integer %d", ErrInvalidInput, v)
	}
	if v == 0 {
		return FromBits([]byte{0}), nil
	}
	var bits []byte
	for v > 0 {
		bits = append(bits, byte(v&1))
		v >>= 1
	}
	// Accumulated least significant first; reverse into big-endian order.
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	return &Sequence{bits: bits}, nil
}

// FromIntWidth returns the big-endian binary representation of v left-padded
// with zeros to exactly width bits.
//
// Returns ErrInvalidInput if v is negative or does not fit in width bits.
func FromIntWidth(v int64, width int) (*Sequence, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: negative integer %d", ErrInvalidInput, v)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidInput, width)
	}
	minimal, err := FromInt(v)
	if err != nil {
		return nil, err
	}
	n := minimal.Len()
	if n > width {
		return nil, fmt.Errorf("%w: %d does not fit in %d bits", ErrInvalidInput, v, width)
	}
	bits := make([]byte, width)
	copy(bits[width-n:], minimal.bits)
	return &Sequence{bits: bits}, nil
}

// FromBytes expands a byte buffer into a Sequence of len(data)*8 bits, read
// in the given order.
func FromBytes(data []byte, order BitOrder) *Sequence {
	bits := make([]byte, 0, len(data)*8)
	for _, by := range data {
		if order == MSBFirst {
			for i := 7; i >= 0; i-- {
				bits = append(bits, (by>>uint(i))&1)
			}
		} else {
			for i := 0; i < 8; i++ {
				bits = append(bits, (by>>uint(i))&1)
			}
		}
	}
	return &Sequence{bits: bits}
}

// Len returns the number of bits in the sequence.
func (s *Sequence) Len() int {
	return len(s.bits)
}

// Bit returns the bit at position i. It panics if i is out of range.
func (s *Sequence) Bit(i int) byte {
	if i < 0 || i >= len(s.bits) {
		panic(fmt.Sprintf("bitseq: bit index %d out of range [0, %d)", i, len(s.bits)))
	}
	return s.bits[i]
}

// Bits returns a copy of the sequence as a slice of 0/1 bytes.
func (s *Sequence) Bits() []byte {
	out := make([]byte, len(s.bits))
	copy(out, s.bits)
	return out
}

// Append adds a single bit to the end of the sequence. It panics if bit is
// not 0 or 1.
func (s *Sequence) Append(bit byte) {
	if bit > 1 {
		panic(fmt.Sprintf("bitseq: appended value %d, want 0 or 1", bit))
	}
	s.bits = append(s.bits, bit)
}

// Pop removes and returns the last bit of the sequence.
//
// Returns ErrEmptySequence if the sequence has no elements.
func (s *Sequence) Pop() (byte, error) {
	if len(s.bits) == 0 {
		return 0, ErrEmptySequence
	}
	bit := s.bits[len(s.bits)-1]
	s.bits = s.bits[:len(s.bits)-1]
	return bit, nil
}

// Xor returns the element-wise XOR of s and other as a new Sequence.
//
// Returns ErrLengthMismatch if the operands differ in length.
func (s *Sequence) Xor(other *Sequence) (*Sequence, error) {
	if len(s.bits) != len(other.bits) {
		return nil, fmt.Errorf("%w: %d vs %d bits", ErrLengthMismatch, len(s.bits), len(other.bits))
	}
	out := make([]byte, len(s.bits))
	for i := range s.bits {
		out[i] = s.bits[i] ^ other.bits[i]
	}
	return &Sequence{bits: out}, nil
}

// And returns the element-wise AND of s and other as a new Sequence.
//
// Returns ErrLengthMismatch if the operands differ in length.
func (s *Sequence) And(other *Sequence) (*Sequence, error) {
	if len(s.bits) != len(other.bits) {
		return nil, fmt.Errorf("%w: %d vs %d bits", ErrLengthMismatch, len(s.bits), len(other.bits))
	}
	out := make([]byte, len(s.bits))
	for i := range s.bits {
		out[i] = s.bits[i] & other.bits[i]
	}
	return &Sequence{bits: out}, nil
}

// Concat returns a new Sequence consisting of s followed by other. The
// result shares no storage with either operand.
func (s *Sequence) Concat(other *Sequence) *Sequence {
	out := make([]byte, 0, len(s.bits)+len(other.bits))
	out = append(out, s.bits...)
	out = append(out, other.bits...)
	return &Sequence{bits: out}
}

// Parity returns 1 if the number of set bits is odd and 0 otherwise. The
// parity of an empty sequence is 0.
func (s *Sequence) Parity() byte {
	var p byte
	for _, b := range s.bits {
		p ^= b
	}
	return p
}

// Bytes packs the sequence into bytes, 8 bits per byte, in the given order.
//
// Returns ErrUnalignedLength if the length is not a multiple of 8.
func (s *Sequence) Bytes(order BitOrder) ([]byte, error) {
	if len(s.bits)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits", ErrUnalignedLength, len(s.bits))
	}
	out := make([]byte, len(s.bits)/8)
	for i, b := range s.bits {
		if b == 0 {
			continue
		}
		if order == MSBFirst {
			out[i/8] |= 1 << uint(7-i%8)
		} else {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out, nil
}

// Int interprets the sequence as a big-endian binary number. An empty
// sequence is 0.
func (s *Sequence) Int() *big.Int {
	v := new(big.Int)
	for _, b := range s.bits {
		v.Lsh(v, 1)
		if b == 1 {
			v.Or(v, big.NewInt(1))
		}
	}
	return v
}

// Slice returns a new Sequence covering the half-open range [start, end).
//
// Returns ErrIndexOutOfRange on invalid bounds.
func (s *Sequence) Slice(start, end int) (*Sequence, error) {
	if start < 0 || end > len(s.bits) || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d bits", ErrIndexOutOfRange, start, end, len(s.bits))
	}
	out := make([]byte, end-start)
	copy(out, s.bits[start:end])
	return &Sequence{bits: out}, nil
}

// Clone returns a copy of the sequence with its own storage.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{bits: s.Bits()}
}

// Equal reports whether s and other hold the same bits in the same order.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil || len(s.bits) != len(other.bits) {
		return false
	}
	for i := range s.bits {
		if s.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders the sequence as a string of '0' and '1' characters.
func (s *Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s.bits))
	for _, b := range s.bits {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}
