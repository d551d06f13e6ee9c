package mpstart

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/polyroots/mpstart/kind"
)

func mpComplexFromFloat(re, im float64, prec uint) kind.MPComplex {
	return kind.MPComplex{
		Re: new(big.Float).SetPrec(prec).SetFloat64(re),
		Im: new(big.Float).SetPrec(prec).SetFloat64(im),
	}
}

func TestShiftMPMonomialRoundTrip(t *testing.T) {
	a := assert.New(t)

	// p(x) = x^5 - 1, shift by g = 0: coefficients unchanged.
	coeffs := []kind.MPComplex{
		mpComplexFromFloat(-1, 0, kind.BasePrecision),
		mpComplexFromFloat(0, 0, kind.BasePrecision),
		mpComplexFromFloat(0, 0, kind.BasePrecision),
		mpComplexFromFloat(0, 0, kind.BasePrecision),
		mpComplexFromFloat(0, 0, kind.BasePrecision),
		mpComplexFromFloat(1, 0, kind.BasePrecision),
	}
	g := mpComplexFromFloat(0, 0, kind.BasePrecision)

	result := ShiftMP(NewSolveContext(DefaultConfig()), coeffs, g, 5, kind.BasePrecision, 53)
	a.False(result.Degraded)
	reF, _ := result.Coeffs[0].Re.Float64()
	a.InDelta(-1.0, reF, 1e-9)
}

func TestShiftMPLinearFactorsShiftByTen(t *testing.T) {
	a := assert.New(t)

	// p(x) = (x-2)(x-3)(x-5) = x^3 - 10x^2 + 31x - 30
	coeffs := []kind.MPComplex{
		mpComplexFromFloat(-30, 0, kind.BasePrecision),
		mpComplexFromFloat(31, 0, kind.BasePrecision),
		mpComplexFromFloat(-10, 0, kind.BasePrecision),
		mpComplexFromFloat(1, 0, kind.BasePrecision),
	}
	g := mpComplexFromFloat(10, 0, kind.BasePrecision)

	// p(x+10) = (x+8)(x+7)(x+5) = x^3 + 20x^2 + 131x + 280
	result := ShiftMP(NewSolveContext(DefaultConfig()), coeffs, g, 3, kind.BasePrecision, 53)
	a.False(result.Degraded)

	want := []float64{280, 131, 20, 1}
	for i, w := range want {
		got, _ := result.Coeffs[i].Re.Float64()
		a.InDelta(w, got, 1e-6)
	}
}

func TestShiftDoubleNarrowsModuli(t *testing.T) {
	a := assert.New(t)

	coeffs := []kind.MPComplex{
		mpComplexFromFloat(-30, 0, kind.BasePrecision),
		mpComplexFromFloat(31, 0, kind.BasePrecision),
		mpComplexFromFloat(-10, 0, kind.BasePrecision),
		mpComplexFromFloat(1, 0, kind.BasePrecision),
	}
	moduli, degraded := ShiftDouble(NewSolveContext(DefaultConfig()), coeffs, complex(10, 0), 3, kind.BasePrecision, 53)
	a.False(degraded)
	a.InDelta(280, moduli[0], 1e-6)
}

// TestShiftDoubleIsIdempotentOnRepeatedCalls checks that shifting the same
// coefficients by the same g twice produces bit-identical moduli: ShiftMP's
// adaptive-precision retry loop must not depend on any hidden mutable state
// carried between calls.
func TestShiftDoubleIsIdempotentOnRepeatedCalls(t *testing.T) {
	coeffs := []kind.MPComplex{
		mpComplexFromFloat(-30, 0, kind.BasePrecision),
		mpComplexFromFloat(31, 0, kind.BasePrecision),
		mpComplexFromFloat(-10, 0, kind.BasePrecision),
		mpComplexFromFloat(1, 0, kind.BasePrecision),
	}
	g := complex(10.0, 0.0)

	ctx := NewSolveContext(DefaultConfig())
	first, _ := ShiftDouble(ctx, coeffs, g, 3, kind.BasePrecision, 53)
	second, _ := ShiftDouble(ctx, coeffs, g, 3, kind.BasePrecision, 53)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ShiftDouble not idempotent (-first +second):\n%s", diff)
	}
}
