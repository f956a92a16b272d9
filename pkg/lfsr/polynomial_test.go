package lfsr

import (
	"reflect"
	"testing"
)

func TestNewPolynomial_AlwaysContainsConstantTerm(t *testing.T) {
	p := NewPolynomial(3, 1)
	if !p.Contains(0) {
		t.Error("Constant term missing")
	}
	if !NewPolynomial().Contains(0) {
		t.Error("Trivial polynomial missing constant term")
	}
}

func TestPolynomial_Degree(t *testing.T) {
	if got := NewPolynomial(5, 2).Degree(); got != 5 {
		t.Errorf("Degree = %d, want 5", got)
	}
	if got := NewPolynomial().Degree(); got != 0 {
		t.Errorf("Degree of trivial polynomial = %d, want 0", got)
	}
}

func TestPolynomial_TapsAndExponents(t *testing.T) {
	p := NewPolynomial(3, 1, 1, 0) // duplicates and explicit 0 collapse
	if got := p.Exponents(); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("Exponents = %v, want [0 1 3]", got)
	}
	if got := p.Taps(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Taps = %v, want [1 3]", got)
	}
}

func TestPolynomial_Equal(t *testing.T) {
	if !NewPolynomial(3, 1).Equal(NewPolynomial(1, 3, 0)) {
		t.Error("Equal polynomials compare unequal")
	}
	if NewPolynomial(3, 1).Equal(NewPolynomial(3, 2)) {
		t.Error("Different polynomials compare equal")
	}
}

func TestPolynomial_String(t *testing.T) {
	cases := []struct {
		poly Polynomial
		want string
	}{
		{NewPolynomial(3, 1), "x^3 + x + 1"},
		{NewPolynomial(5, 2), "x^5 + x^2 + 1"},
		{NewPolynomial(), "1"},
	}
	for _, c := range cases {
		if got := c.poly.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestNewPolynomial_NegativeExponent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative exponent")
		}
	}()
	NewPolynomial(3, -1)
}
