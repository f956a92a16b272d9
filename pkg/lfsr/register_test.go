package lfsr

import (
	"errors"
	"strings"
	"testing"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
)

func TestRegister_KnownStream(t *testing.T) {
	// Primitive x^3 + x + 1 seeded with 111 must emit 11101.
	reg, err := New(NewPolynomial(3, 1), bitseq.FromBits([]byte{1, 1, 1}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}

	out := reg.RunSteps(5)
	if out.String() != "11101" {
		t.Errorf("RunSteps(5) = %s, want 11101", out)
	}
}

func TestRegister_Cycle_Primitive(t *testing.T) {
	reg, err := New(NewPolynomial(3, 1), bitseq.FromBits([]byte{1, 1, 1}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}

	cycle := reg.Cycle()
	if cycle.Len() != 7 {
		t.Errorf("Cycle length = %d, want 7 (2^3 - 1)", cycle.Len())
	}
	if !strings.HasPrefix(cycle.String(), "11101") {
		t.Errorf("Cycle = %s, want 11101 prefix", cycle)
	}
}

func TestRegister_Cycle_DegreeTwo(t *testing.T) {
	reg, err := New(NewPolynomial(2, 1), bitseq.FromBits([]byte{1, 1}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}

	cycle := reg.Cycle()
	if cycle.Len() != 3 {
		t.Errorf("Cycle length = %d, want 3", cycle.Len())
	}
}

func TestRegister_DefaultState(t *testing.T) {
	reg, err := New(NewPolynomial(4, 1), nil)
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}
	if reg.State().String() != "1111" {
		t.Errorf("Default state = %s, want 1111", reg.State())
	}
}

func TestRegister_InvalidStateLength(t *testing.T) {
	_, err := New(NewPolynomial(3, 1), bitseq.FromBits([]byte{1, 1}))
	if !errors.Is(err, ErrInvalidStateLength) {
		t.Fatalf("Expected ErrInvalidStateLength, got %v", err)
	}
	// The message must report both the actual and the expected bit counts.
	if !strings.Contains(err.Error(), "2") || !strings.Contains(err.Error(), "3") {
		t.Errorf("Error %q does not report both bit counts", err)
	}
}

func TestRegister_DegreeZeroPolynomial(t *testing.T) {
	if _, err := New(NewPolynomial(), nil); err == nil {
		t.Error("Expected error for degree-0 polynomial")
	}
}

func TestRegister_StateIsACopy(t *testing.T) {
	reg, err := New(NewPolynomial(3, 1), bitseq.FromBits([]byte{1, 0, 1}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}

	snapshot := reg.State()
	snapshot.Append(1)
	reg.Step()

	if reg.State().Len() != 3 {
		t.Error("Register state mutated through the State() copy")
	}
}

func TestRegister_PeekDoesNotStep(t *testing.T) {
	reg, err := New(NewPolynomial(3, 1), bitseq.FromBits([]byte{0, 1, 1}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}

	if reg.Peek() != 0 {
		t.Errorf("Peek = %d, want 0", reg.Peek())
	}
	if reg.Peek() != reg.Step() {
		t.Error("Peek disagrees with the following Step")
	}
}

func TestRegister_RunStepsZero(t *testing.T) {
	reg, err := New(NewPolynomial(3, 1), nil)
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}
	if reg.RunSteps(0).Len() != 0 {
		t.Error("RunSteps(0) should produce an empty sequence")
	}
}

func TestNewFromInt(t *testing.T) {
	reg, err := NewFromInt(NewPolynomial(4, 1), 0b0101)
	if err != nil {
		t.Fatalf("NewFromInt failed: %v", err)
	}
	if reg.State().String() != "0101" {
		t.Errorf("State = %s, want 0101", reg.State())
	}

	if _, err := NewFromInt(NewPolynomial(3, 1), -1); err == nil {
		t.Error("Expected error for negative seed")
	}
}
