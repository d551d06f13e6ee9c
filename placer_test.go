package mpstart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyroots/mpstart/kind"
)

func TestPlaceDoubleFreshStartCoversEveryRootOnce(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	rv := NewRootVectorDouble(5)
	moduli := []float64{1, 0, 0, 0, 0, 1} // x^5 - 1

	PlaceDouble(ctx, rv, moduli, false, 0, 0, 0, 0, identityRootIndex)

	for i := 0; i < 5; i++ {
		a.InDelta(1.0, math.Hypot(real(rv.RootsDouble[i]), imag(rv.RootsDouble[i])), 1e-9)
	}
}

func TestPlaceDoubleUserDefinedEquispaced(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	rv := NewRootVectorDouble(4)
	moduli := make([]float64, 5) // unused in the user-defined branch except for n

	PlaceDouble(ctx, rv, moduli, true, 0, 0, 0, 0, identityRootIndex)

	for i := 0; i < 4; i++ {
		a.InDelta(1.0, math.Hypot(real(rv.RootsDouble[i]), imag(rv.RootsDouble[i])), 1e-9)
	}
}

func TestPlaceDoubleMarksClusterOutputReady(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.EpsOut = 1.0 // generous, so the cluster test always fires
	ctx := NewSolveContext(cfg)
	rv := NewRootVectorDouble(1)
	moduli := []float64{1, 1}

	PlaceDouble(ctx, rv, moduli, false, 0, 0, 1.0, 0, identityRootIndex)

	a.Equal(StatusOutputReady, rv.Status[0][0])
}

func TestPlaceDPESkipsUntouchedRootsInAfterFloatMode(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	rv := NewRootVectorDPE(2)
	rv.Status[0][0] = StatusDoubleOverflow
	rv.Status[1][0] = StatusIterating
	rv.RootsDPE[1] = kind.DPEComplex{Re: kind.FromFloat64(9), Im: kind.FromFloat64(9)}

	moduli := make([]kind.DPE, 3)
	moduli[0] = kind.FromFloat64(1)
	moduli[2] = kind.FromFloat64(1)

	PlaceDPE(ctx, rv, moduli, false, true, 0, 0, 0, kind.DPEZero, identityRootIndex)

	a.InEpsilon(9.0, rv.RootsDPE[1].Re.Float64(), 1e-9)
}

func TestPlaceMPFreshStartCoversEveryRootOnce(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	rv := NewRootVectorMP(2)
	moduli := []kind.MP{
		kind.MPFromFloat64(1, kind.BasePrecision),
		kind.MPFromFloat64(0, kind.BasePrecision),
		kind.MPFromFloat64(1, kind.BasePrecision),
	}

	PlaceMP(ctx, rv, moduli, false, 0, 0, 0, kind.MPFromFloat64(0, kind.BasePrecision), kind.BasePrecision, identityRootIndex)

	for i := 0; i < 2; i++ {
		reF, _ := rv.RootsMP[i].Re.Float64()
		imF, _ := rv.RootsMP[i].Im.Float64()
		a.InDelta(1.0, math.Hypot(reF, imF), 1e-9)
	}
}
