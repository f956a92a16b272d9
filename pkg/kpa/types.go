package kpa

import (
	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
	"github.com/mahdiidarabi/lfsr-attack/pkg/lfsr"
)

// Sample is the input of the known-plaintext attack: a ciphertext and a
// known prefix of its plaintext. The prefix may be shorter than the
// ciphertext but never longer.
type Sample struct {
	Ciphertext     []byte // Full ciphertext, keystream XOR plaintext
	KnownPlaintext []byte // Known plaintext bytes, aligned to the start of the ciphertext
}

// Result contains the outcome of a keystream recovery.
type Result struct {
	Polynomial lfsr.Polynomial  // Recovered feedback polynomial
	Complexity int              // Linear complexity of the exposed keystream
	Keystream  *bitseq.Sequence // Regenerated keystream covering the full ciphertext
	Plaintext  []byte           // Decrypted ciphertext
	Verified   bool             // Whether the decryption reproduces the known prefix
}
