package lfsr

import (
	"fmt"

	"github.com/mahdiidarabi/lfsr-attack/pkg/bitseq"
)

// Default polynomials for the alternating-step construction. All three are
// primitive and their degrees (5, 3, 4) are pairwise coprime, so the
// combined period is the product of the individual periods.
var (
	DefaultControlPolynomial = NewPolynomial(5, 2)
	DefaultDataAPolynomial   = NewPolynomial(3, 1)
	DefaultDataBPolynomial   = NewPolynomial(4, 1)
)

// AlternatingStepGenerator combines three registers into a clock-controlled
// keystream generator. The control register decides, each step, which of the
// two data registers is clocked; the output is the XOR of the data
// registers' most recent output bits. Irregular clocking pushes the linear
// complexity of the output far above that of any single register.
//
// The generator is a lazy infinite stream: each Next call consumes one
// output and there is no reset. Rebuilding a generator from the same seed
// replays the identical stream — the construction is deterministic, not
// cryptographically random. That weakness is the point: the output still
// has finite linear complexity, so a long enough known prefix breaks it.
type AlternatingStepGenerator struct {
	control *Register
	dataA   *Register
	dataB   *Register

	// Most recent output of each data register. An unclocked register
	// contributes its held value; both start at 0.
	lastA byte
	lastB byte
}

// NewAlternatingStep constructs a generator with the default polynomials.
// The seed packs the three register states contiguously: control bits, then
// dataA bits, then dataB bits (12 bits total for the defaults).
//
// Returns ErrInsufficientSeedLength, reporting the required width, when the
// seed is too short. Seeds longer than required use only the leading bits.
func NewAlternatingStep(seed *bitseq.Sequence) (*AlternatingStepGenerator, error) {
	return NewAlternatingStepWithPolynomials(
		DefaultControlPolynomial, DefaultDataAPolynomial, DefaultDataBPolynomial, seed)
}

// NewAlternatingStepWithPolynomials constructs a generator from explicit
// control and data polynomials. The data degrees should be coprime to each
// other and to the control degree, or the combined cycle collapses; this is
// not enforced.
func NewAlternatingStepWithPolynomials(control, dataA, dataB Polynomial, seed *bitseq.Sequence) (*AlternatingStepGenerator, error) {
	cd, ad, bd := control.Degree(), dataA.Degree(), dataB.Degree()
	total := cd + ad + bd

	seedLen := 0
	if seed != nil {
		seedLen = seed.Len()
	}
	if seedLen < total {
		return nil, fmt.Errorf("%w: need %d bits (%d control + %d dataA + %d dataB), got %d",
			ErrInsufficientSeedLength, total, cd, ad, bd, seedLen)
	}

	controlState, err := seed.Slice(0, cd)
	if err != nil {
		return nil, err
	}
	dataAState, err := seed.Slice(cd, cd+ad)
	if err != nil {
		return nil, err
	}
	dataBState, err := seed.Slice(cd+ad, total)
	if err != nil {
		return nil, err
	}

	controlReg, err := New(control, controlState)
	if err != nil {
		return nil, err
	}
	dataAReg, err := New(dataA, dataAState)
	if err != nil {
		return nil, err
	}
	dataBReg, err := New(dataB, dataBState)
	if err != nil {
		return nil, err
	}

	return &AlternatingStepGenerator{
		control: controlReg,
		dataA:   dataAReg,
		dataB:   dataBReg,
	}, nil
}

// Next produces one keystream bit.
//
// The control register's pending output is read without stepping it, then
// the control register is clocked unconditionally. A set control bit clocks
// dataB and holds dataA's last output; a clear bit clocks dataA and holds
// dataB's. The output is the XOR of the two most recent data outputs.
func (g *AlternatingStepGenerator) Next() byte {
	c := g.control.Peek()
	g.control.Step()

	if c == 1 {
		g.lastB = g.dataB.Step()
	} else {
		g.lastA = g.dataA.Step()
	}
	return g.lastA ^ g.lastB
}

// NextBits produces the next n keystream bits in emission order.
func (g *AlternatingStepGenerator) NextBits(n int) *bitseq.Sequence {
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = g.Next()
	}
	return bitseq.FromBits(bits)
}
