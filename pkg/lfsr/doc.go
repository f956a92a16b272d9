// Package lfsr implements linear feedback shift registers over GF(2), the
// Berlekamp-Massey algorithm that inverts them, and the alternating-step
// generator that combines three registers into a clock-controlled keystream.
//
// # Quick Start
//
//	import (
//		"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
//		"github.com/mahdiidarabi/lfsr-attack/pkg/lfsr"
//	)
//
//	// x^3 + x + 1, register seeded with 111
//	reg, err := lfsr.New(lfsr.NewPolynomial(3, 1), bitseq.FromBits([]byte{1, 1, 1}))
//	if err != nil {
//		log.Fatal(err)
//	}
//	stream := reg.RunSteps(5) // 11101
//
//	// Recover the generator from its output
//	poly, complexity := lfsr.BerlekampMassey(stream)
//	fmt.Println(poly, complexity) // x^3 + x + 1, 3
//
// # Conventions
//
// A register of degree d holds the first d bits of its output stream,
// oldest first. Step emits the front bit, computes the feedback bit as the
// XOR of position d-t for every nonzero tap t of the polynomial, shifts the
// register one position, and inserts the feedback bit at the back. Under
// this convention the recurrence is s[n] = XOR of s[n-t] over the taps, so a
// register rebuilt from a Berlekamp-Massey polynomial and the first d
// observed bits replays the observed stream exactly.
//
// Polynomials are sets of exponents that always contain the constant term:
// NewPolynomial(3, 1) is 1 + x + x^3.
//
// Nothing in this package is safe for concurrent use; each goroutine must
// own its registers and generators outright.
package lfsr
