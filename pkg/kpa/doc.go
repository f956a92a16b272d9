// Package kpa implements a known-plaintext attack against LFSR-based stream
// ciphers.
//
// Given a ciphertext and a known prefix of its plaintext, the attack XORs
// the two to expose a prefix of the keystream, runs Berlekamp-Massey over it
// to recover the generator's feedback polynomial, rebuilds the register from
// the first bits of the exposed keystream, regenerates the full keystream,
// and decrypts the entire ciphertext. The recovery is exact whenever the
// known prefix exposes at least twice as many keystream bits as the
// generator's linear complexity.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/lfsr-attack/pkg/kpa"
//
//	// Create a client with default settings
//	client := kpa.NewClient()
//
//	// Recover the keystream generator and decrypt
//	result, err := client.Recover(ctx, "sample.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Feedback polynomial: %s\n", result.Polynomial)
//	fmt.Printf("Plaintext: %s\n", result.Plaintext)
//
// # Customization
//
// Samples can come from other sources by swapping the parser:
//
//	client := kpa.NewClient().WithParser(&kpa.RawParser{
//	    KnownPlaintextFile: "prefix.bin",
//	})
//	result, err := client.Recover(ctx, "ciphertext.bin")
//
// An injected zerolog logger reports attack progress; the default is a no-op
// logger, so the package is silent unless asked otherwise:
//
//	client := kpa.NewClient().WithLogger(log.With().Str("attack", "kpa").Logger())
package kpa
