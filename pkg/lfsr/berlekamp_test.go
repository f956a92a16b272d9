package lfsr

import (
	"testing"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
)

func TestBerlekampMassey_KnownVector(t *testing.T) {
	poly, complexity := BerlekampMassey(bitseq.FromBits([]byte{1, 0, 0, 1, 1}))

	if complexity != 3 {
		t.Errorf("Linear complexity = %d, want 3", complexity)
	}
	if !poly.Equal(NewPolynomial(3, 1)) {
		t.Errorf("Polynomial = %s, want x^3 + x + 1", poly)
	}
}

func TestBerlekampMassey_EmptySequence(t *testing.T) {
	poly, complexity := BerlekampMassey(bitseq.New())

	if complexity != 0 {
		t.Errorf("Linear complexity = %d, want 0", complexity)
	}
	if !poly.Equal(NewPolynomial()) {
		t.Errorf("Polynomial = %s, want 1", poly)
	}
}

func TestBerlekampMassey_AllZero(t *testing.T) {
	poly, complexity := BerlekampMassey(bitseq.FromBits(make([]byte, 16)))

	if complexity != 0 {
		t.Errorf("Linear complexity = %d, want 0", complexity)
	}
	if !poly.Equal(NewPolynomial()) {
		t.Errorf("Polynomial = %s, want 1", poly)
	}
}

func TestBerlekampMassey_RecoversGenerator(t *testing.T) {
	// Generate a stream from each polynomial and check exact round-trip
	// recovery. Sequence length must be at least twice the degree.
	polys := []Polynomial{
		NewPolynomial(3, 1),
		NewPolynomial(4, 1),
		NewPolynomial(5, 2),
		NewPolynomial(7, 1),
		NewPolynomial(8, 6, 5, 4),
	}

	for _, poly := range polys {
		t.Run(poly.String(), func(t *testing.T) {
			reg, err := New(poly, nil)
			if err != nil {
				t.Fatalf("Failed to construct register: %v", err)
			}
			stream := reg.RunSteps(4 * poly.Degree())

			recovered, complexity := BerlekampMassey(stream)
			if complexity != poly.Degree() {
				t.Errorf("Linear complexity = %d, want %d", complexity, poly.Degree())
			}
			if !recovered.Equal(poly) {
				t.Errorf("Recovered %s, want %s", recovered, poly)
			}
		})
	}
}

func TestBerlekampMassey_RecoveredPolynomialReplaysStream(t *testing.T) {
	// The recovered polynomial plus the first `complexity` observed bits
	// must regenerate the observed stream exactly.
	reg, err := New(NewPolynomial(5, 2), bitseq.FromBits([]byte{1, 0, 1, 1, 0}))
	if err != nil {
		t.Fatalf("Failed to construct register: %v", err)
	}
	observed := reg.RunSteps(40)

	poly, complexity := BerlekampMassey(observed)
	state, err := observed.Slice(0, complexity)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	replay, err := New(poly, state)
	if err != nil {
		t.Fatalf("Failed to rebuild register: %v", err)
	}

	if got := replay.RunSteps(40); !got.Equal(observed) {
		t.Errorf("Replayed stream %s != observed %s", got, observed)
	}
}

func TestBerlekampMassey_HighComplexitySequence(t *testing.T) {
	// 0...01: a single trailing 1 forces the complexity to the full length.
	bits := make([]byte, 8)
	bits[7] = 1
	_, complexity := BerlekampMassey(bitseq.FromBits(bits))
	if complexity != 8 {
		t.Errorf("Linear complexity = %d, want 8", complexity)
	}
}
