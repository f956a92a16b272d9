package kpa

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SampleParser defines the interface for loading attack samples from various
// sources.
type SampleParser interface {
	// ParseSample loads a sample from a source and returns it.
	ParseSample(source string) (*Sample, error)
}

// JSONParser loads samples from JSON files.
type JSONParser struct {
	CiphertextField string // Field name for the ciphertext (default: "ciphertext")
	PlaintextField  string // Field name for the known plaintext (default: "known_plaintext")
}

// ParseSample loads a sample from a JSON file.
//
// Expected format:
//
//	{"ciphertext": "0x1a2b...", "known_plaintext": "attack at dawn"}
//
// Values are parsed as hex when they decode cleanly (with or without a 0x
// prefix) and fall back to literal text bytes otherwise.
func (p *JSONParser) ParseSample(jsonFile string) (*Sample, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var item map[string]string
	if err := json.NewDecoder(file).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	ciphertextField := p.CiphertextField
	if ciphertextField == "" {
		ciphertextField = "ciphertext"
	}
	plaintextField := p.PlaintextField
	if plaintextField == "" {
		plaintextField = "known_plaintext"
	}

	ctVal, ok := item[ciphertextField]
	if !ok {
		return nil, fmt.Errorf("missing %s field", ciphertextField)
	}
	ptVal, ok := item[plaintextField]
	if !ok {
		return nil, fmt.Errorf("missing %s field", plaintextField)
	}

	return &Sample{
		Ciphertext:     parseBytes(ctVal),
		KnownPlaintext: parseBytes(ptVal),
	}, nil
}

// RawParser loads samples from binary files: the source passed to
// ParseSample is the ciphertext file, and KnownPlaintextFile names the file
// holding the known plaintext prefix.
type RawParser struct {
	KnownPlaintextFile string
}

// ParseSample loads the ciphertext from source and the known plaintext from
// the configured file.
func (p *RawParser) ParseSample(source string) (*Sample, error) {
	if p.KnownPlaintextFile == "" {
		return nil, fmt.Errorf("RawParser requires KnownPlaintextFile")
	}

	ciphertext, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read ciphertext: %w", err)
	}
	plaintext, err := os.ReadFile(p.KnownPlaintextFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read known plaintext: %w", err)
	}

	return &Sample{
		Ciphertext:     ciphertext,
		KnownPlaintext: plaintext,
	}, nil
}

// parseBytes interprets a string value as hex when possible (handling an
// optional 0x prefix), falling back to the literal text bytes.
func parseBytes(val string) []byte {
	s := strings.TrimPrefix(val, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s) > 0 && len(s)%2 == 0 {
		if decoded, err := hex.DecodeString(s); err == nil {
			return decoded
		}
	}
	return []byte(val)
}
