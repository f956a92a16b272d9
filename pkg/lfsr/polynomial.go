package lfsr

import (
	"fmt"
	"sort"
	"strings"
)

// Polynomial is a feedback polynomial over GF(2), represented as the set of
// exponents with nonzero coefficients. The constant term is always present:
// NewPolynomial(3, 1) is 1 + x + x^3. The degree (maximum exponent) is the
// register length of the LFSR the polynomial describes.
type Polynomial struct {
	exps map[int]struct{}
}

// NewPolynomial builds a polynomial from the given exponents. Exponent 0 is
// inserted whether or not it is listed; duplicates are ignored. It panics on
// a negative exponent.
func NewPolynomial(exponents ...int) Polynomial {
	exps := make(map[int]struct{}, len(exponents)+1)
	exps[0] = struct{}{}
	for _, e := range exponents {
		if e < 0 {
			panic(fmt.Sprintf("lfsr: negative exponent %d", e))
		}
		exps[e] = struct{}{}
	}
	return Polynomial{exps: exps}
}

// Degree returns the maximum exponent. The trivial polynomial 1 has degree 0.
func (p Polynomial) Degree() int {
	max := 0
	for e := range p.exps {
		if e > max {
			max = e
		}
	}
	return max
}

// Contains reports whether exponent e has a nonzero coefficient.
func (p Polynomial) Contains(e int) bool {
	_, ok := p.exps[e]
	return ok
}

// Exponents returns the exponent set in ascending order.
func (p Polynomial) Exponents() []int {
	out := make([]int, 0, len(p.exps))
	for e := range p.exps {
		out = append(out, e)
	}
	sort.Ints(out)
	return out
}

// Taps returns the nonzero exponents in ascending order. These are the
// register positions that feed back into the new input bit.
func (p Polynomial) Taps() []int {
	out := make([]int, 0, len(p.exps))
	for e := range p.exps {
		if e != 0 {
			out = append(out, e)
		}
	}
	sort.Ints(out)
	return out
}

// Equal reports whether p and other have the same exponent set.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.exps) != len(other.exps) {
		return false
	}
	for e := range p.exps {
		if _, ok := other.exps[e]; !ok {
			return false
		}
	}
	return true
}

// String renders the polynomial in generator form, highest exponent first:
// "x^3 + x + 1".
func (p Polynomial) String() string {
	exps := p.Exponents()
	terms := make([]string, 0, len(exps))
	for i := len(exps) - 1; i >= 0; i-- {
		switch exps[i] {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", exps[i]))
		}
	}
	return strings.Join(terms, " + ")
}
