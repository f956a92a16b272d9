// Package bitseq provides an ordered, mutable sequence of binary values
// with explicit bit-order conversions to and from bytes and integers.
//
// A Sequence is the common currency of the toolkit: keystream generators
// emit them, Berlekamp-Massey consumes them, and the known-plaintext attack
// XORs them together. Every conversion between bytes and bits takes an
// explicit BitOrder, because the two conventions in play (numeric MSB-first
// reading and temporal LSB-first keystream reading) are easy to mix up
// silently.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
//
//	seq := bitseq.FromBytes([]byte("hi"), bitseq.MSBFirst)
//	fmt.Println(seq)          // 0110100001101001
//	fmt.Println(seq.Parity()) // 0
//
//	other := seq.Clone()
//	zero, _ := seq.Xor(other) // all-zero sequence
//	_ = zero
//
// Sequences own their backing storage exclusively: binary operations and
// Concat always allocate a fresh Sequence and never alias an operand.
package bitseq
