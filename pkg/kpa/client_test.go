package kpa

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/mahdiidarabi/lfsr-attack/pkg/lfsr"
)

// buildSampleJSON encrypts plaintext with the given register and writes a
// JSON sample exposing the first prefixLen plaintext bytes.
func buildSampleJSON(t *testing.T, reg *lfsr.Register, plaintext []byte, prefixLen int) string {
	t.Helper()
	keystream := reg.RunSteps(len(plaintext) * 8)
	ciphertext := encrypt(t, keystream, plaintext)

	body := fmt.Sprintf(`{"ciphertext": "%s", "known_plaintext": "%s"}`,
		hex.EncodeToString(ciphertext), hex.EncodeToString(plaintext[:prefixLen]))
	return writeTempFile(t, "sample.json", []byte(body))
}

func TestClient_Recover(t *testing.T) {
	plaintext := []byte("meet me behind the gasworks at midnight")
	reg, err := lfsr.NewFromInt(lfsr.NewPolynomial(5, 2), 0b10011)
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}
	source := buildSampleJSON(t, reg, plaintext, 6)

	result, err := NewClient().Recover(context.Background(), source)
	if err != nil {
		t.Fatalf("Recover failed: %v", err)
	}

	if !bytes.Equal(result.Plaintext, plaintext) {
		t.Errorf("Decrypted %q, want %q", result.Plaintext, plaintext)
	}
	if !result.Verified {
		t.Error("Known prefix not reproduced")
	}
}

func TestClient_Recover_ParserErrors(t *testing.T) {
	_, err := NewClient().Recover(context.Background(), "does-not-exist.json")
	if err == nil {
		t.Error("Expected error for missing sample file")
	}
}

func TestClient_RecoverSample_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sample := &Sample{Ciphertext: []byte{0x01}, KnownPlaintext: []byte{0x00}}
	if _, err := NewClient().RecoverSample(ctx, sample); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestClient_WithRawParser(t *testing.T) {
	plaintext := []byte("the quick brown fox jumps over the lazy dog")
	reg, err := lfsr.NewFromInt(lfsr.NewPolynomial(7, 1), 0b1110010)
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}
	keystream := reg.RunSteps(len(plaintext) * 8)
	ciphertext := encrypt(t, keystream, plaintext)

	cipherFile := writeTempFile(t, "cipher.bin", ciphertext)
	plainFile := writeTempFile(t, "plain.bin", plaintext[:8])

	client := NewClient().WithParser(&RawParser{KnownPlaintextFile: plainFile})
	result, err := client.Recover(context.Background(), cipherFile)
	if err != nil {
		t.Fatalf("Recover failed: %v", err)
	}

	if !bytes.Equal(result.Plaintext, plaintext) {
		t.Errorf("Decrypted %q, want %q", result.Plaintext, plaintext)
	}
}
