package lfsr

import "github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"

// BerlekampMassey recovers the minimal feedback polynomial of a binary
// sequence and its linear complexity (the length of the shortest LFSR able
// to generate the sequence).
//
// This is the GF(2) specialization of the Berlekamp-Massey algorithm: the
// candidate connection polynomial C starts as 1; at each position the
// discrepancy between the sequence and C's prediction is computed, and when
// it is nonzero C is corrected by a shifted copy of the polynomial saved at
// the last length change, growing the length when 2L <= N.
//
// The function never fails: an empty sequence yields the trivial polynomial
// 1 with complexity 0. The recovered polynomial is guaranteed to generate
// the sequence only when the input is at least twice as long as the true
// linear complexity; shorter inputs silently yield an under-fit polynomial.
// That precondition is the caller's to meet — it is not checked here.
func BerlekampMassey(seq *bitseq.Sequence) (Polynomial, int) {
	n := seq.Len()

	c := make([]byte, n+1) // connection polynomial coefficients, c[j] is x^j
	b := make([]byte, n+1) // copy of c at the last length change
	c[0], b[0] = 1, 1

	length := 0 // current linear complexity L
	m := -1     // position of the last length change

	for i := 0; i < n; i++ {
		d := seq.Bit(i)
		for j := 1; j <= length; j++ {
			d ^= c[j] & seq.Bit(i-j)
		}
		if d == 0 {
			continue
		}

		prev := make([]byte, len(c))
		copy(prev, c)

		// C(x) ^= B(x) * x^(i-m)
		shift := i - m
		for j := 0; j+shift <= n; j++ {
			c[j+shift] ^= b[j]
		}

		if 2*length <= i {
			length = i + 1 - length
			m = i
			b = prev
		}
	}

	exps := make([]int, 0, length+1)
	for j := 0; j <= n; j++ {
		if c[j] == 1 {
			exps = append(exps, j)
		}
	}
	return NewPolynomial(exps...), length
}
