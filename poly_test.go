package mpstart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPolynomialModuli(t *testing.T) {
	a := assert.New(t)

	// p(x) = 1 + 2x + 3x^2
	p, err := NewPolynomial([]complex128{1, 2, 3}, 256)
	a.NoError(err)
	a.Equal(2, p.Degree())

	md := p.ModuliDouble()
	a.Equal([]float64{1, 2, 3}, md)

	mdpe := p.ModuliDPE()
	for i, v := range mdpe {
		a.InEpsilon(md[i], v.Float64(), 1e-12)
	}

	mmp := p.ModuliMP(256)
	for i, v := range mmp {
		a.InEpsilon(md[i], v.Float64(), 1e-12)
	}
}

func TestNewPolynomialDetectsSparse(t *testing.T) {
	a := assert.New(t)

	p, err := NewPolynomial([]complex128{1, 0, 3}, 256)
	a.NoError(err)
	a.True(p.IsSparse())

	p2, err := NewPolynomial([]complex128{1, 2, 3}, 256)
	a.NoError(err)
	a.False(p2.IsSparse())
}

func TestNewPolynomialRejectsTooShort(t *testing.T) {
	a := assert.New(t)

	_, err := NewPolynomial([]complex128{1}, 256)
	a.ErrorIs(err, ErrEmptyPolynomial)
}
