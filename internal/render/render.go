// Package render formats attack results for terminal output: polynomials in
// generator form, bit sequences in readable groups, and decrypted byte
// buffers as printable previews.
package render

import (
	"fmt"
	"strings"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
	"github.com/mahdiidarabi/lfsr-attack/pkg/lfsr"
)

// Polynomial renders a feedback polynomial with its degree, e.g.
// "x^5 + x^2 + 1 (degree 5)".
func Polynomial(p lfsr.Polynomial) string {
	return fmt.Sprintf("%s (degree %d)", p, p.Degree())
}

// Bits renders a bit sequence grouped for readability, e.g. "10110 01101".
// A group size of zero or less disables grouping.
func Bits(s *bitseq.Sequence, group int) string {
	raw := s.String()
	if group <= 0 || len(raw) <= group {
		return raw
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if i > 0 && i%group == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}

// Printable renders a byte buffer for display, replacing non-printable bytes
// with '.' so a partially wrong decryption is still readable.
func Printable(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
