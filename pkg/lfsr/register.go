package lfsr

import (
	"fmt"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
)

// Register is a linear feedback shift register over GF(2). It produces one
// output bit per Step; the register contents are the only state and are
// mutated exclusively by Step (and the operations built on it).
type Register struct {
	poly  Polynomial
	taps  []int
	state []byte
}

// New constructs a register for the given feedback polynomial. If state is
// nil the register starts as all-ones of the required length; otherwise the
// state's bit count must equal the polynomial's degree.
//
// Returns ErrInvalidStateLength, reporting both counts, on a mismatch.
func New(poly Polynomial, state *bitseq.Sequence) (*Register, error) {
	degree := poly.Degree()
	if degree == 0 {
		return nil, fmt.Errorf("lfsr: polynomial %s has degree 0, register would be empty", poly)
	}

	var bits []byte
	if state == nil {
		bits = make([]byte, degree)
		for i := range bits {
			bits[i] = 1
		}
	} else {
		if state.Len() != degree {
			return nil, fmt.Errorf("%w: state is %d bits, polynomial %s requires %d",
				ErrInvalidStateLength, state.Len(), poly, degree)
		}
		bits = state.Bits()
	}

	return &Register{
		poly:  poly,
		taps:  poly.Taps(),
		state: bits,
	}, nil
}

// NewFromInt constructs a register whose initial state is the integer seed
// left-padded to the polynomial's degree.
func NewFromInt(poly Polynomial, seed int64) (*Register, error) {
	state, err := bitseq.FromIntWidth(seed, poly.Degree())
	if err != nil {
		return nil, err
	}
	return New(poly, state)
}

// Polynomial returns the feedback polynomial the register was built with.
func (r *Register) Polynomial() Polynomial {
	return r.poly
}

// State returns a copy of the current register contents, oldest bit first.
// Mutating the returned sequence does not affect the register.
func (r *Register) State() *bitseq.Sequence {
	return bitseq.FromBits(r.state)
}

// Peek returns the bit the next call to Step will output, without stepping.
func (r *Register) Peek() byte {
	return r.state[0]
}

// Step advances the register by one position and returns the output bit.
//
// The output is the front bit (the oldest bit, about to be shifted out). The
// incoming bit is the XOR of position degree-t for every tap t, computed
// before the shift; it enters at the back of the register.
func (r *Register) Step() byte {
	d := len(r.state)
	out := r.state[0]

	var fb byte
	for _, t := range r.taps {
		fb ^= r.state[d-t]
	}

	copy(r.state, r.state[1:])
	r.state[d-1] = fb
	return out
}

// RunSteps calls Step n times and returns the output bits in emission order.
// RunSteps(0) returns an empty sequence.
func (r *Register) RunSteps(n int) *bitseq.Sequence {
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = r.Step()
	}
	return bitseq.FromBits(bits)
}

// Cycle steps the register from its current state until the state repeats a
// previously seen value, and returns every bit produced before the repeat.
//
// For a primitive polynomial of degree d and a nonzero start state the cycle
// length is 2^d - 1; for non-primitive polynomials it is strictly shorter.
// Cycle detects the repeat rather than assuming it, so it terminates for any
// polynomial.
func (r *Register) Cycle() *bitseq.Sequence {
	seen := make(map[string]struct{})
	var bits []byte

	for {
		key := string(r.state)
		if _, ok := seen[key]; ok {
			break
		}
		seen[key] = struct{}{}
		bits = append(bits, r.Step())
	}
	return bitseq.FromBits(bits)
}
