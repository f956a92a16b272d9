package kpa

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
	"github.com/mahdiidarabi/lfsr-attack/pkg/lfsr"
)

// RecoverKeystream runs the known-plaintext attack.
//
// The known plaintext is XORed byte-wise against the matching ciphertext
// prefix to expose the keystream, which is then read as a temporal bit
// sequence (LSB-first across the bytes). Berlekamp-Massey recovers the
// minimal feedback polynomial; a fresh register seeded with the first
// `degree` exposed bits regenerates the keystream for the whole ciphertext,
// and the XOR of the two yields the plaintext.
//
// Result.Verified reports the consistency check that the decryption
// reproduces the known prefix. Note that passing it does not prove the
// remainder decrypted correctly: when the exposed keystream is shorter than
// twice the generator's true linear complexity the recovered polynomial
// still fits the prefix but under-fits the rest.
func RecoverKeystream(ciphertext, knownPlaintext []byte) (*Result, error) {
	if len(ciphertext) == 0 {
		return nil, errors.New("kpa: empty ciphertext")
	}
	if len(knownPlaintext) == 0 {
		return nil, errors.New("kpa: at least one byte of known plaintext is required")
	}
	if len(knownPlaintext) > len(ciphertext) {
		return nil, fmt.Errorf("kpa: known plaintext is %d bytes but ciphertext is only %d",
			len(knownPlaintext), len(ciphertext))
	}

	// Expose the keystream prefix: ciphertext XOR plaintext, byte-wise.
	exposed := make([]byte, len(knownPlaintext))
	for i := range knownPlaintext {
		exposed[i] = ciphertext[i] ^ knownPlaintext[i]
	}
	observed := bitseq.FromBytes(exposed, bitseq.LSBFirst)

	poly, complexity := lfsr.BerlekampMassey(observed)
	if complexity == 0 {
		return nil, errors.New("kpa: exposed keystream has zero linear complexity")
	}

	// The register's initial state is the first `complexity` keystream bits;
	// under the register's shift convention it replays them verbatim.
	state, err := observed.Slice(0, complexity)
	if err != nil {
		return nil, err
	}
	reg, err := lfsr.New(poly, state)
	if err != nil {
		return nil, err
	}

	keystream := reg.RunSteps(len(ciphertext) * 8)
	cipherBits := bitseq.FromBytes(ciphertext, bitseq.LSBFirst)
	plainBits, err := keystream.Xor(cipherBits)
	if err != nil {
		return nil, err
	}
	plaintext, err := plainBits.Bytes(bitseq.LSBFirst)
	if err != nil {
		return nil, err
	}

	return &Result{
		Polynomial: poly,
		Complexity: complexity,
		Keystream:  keystream,
		Plaintext:  plaintext,
		Verified:   bytes.Equal(plaintext[:len(knownPlaintext)], knownPlaintext),
	}, nil
}
