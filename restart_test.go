package mpstart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyroots/mpstart/kind"
)

func TestRestartDoubleSingletonClusterSkipped(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	poly, err := NewPolynomial([]complex128{-1, 0, 0, 0, 0, 1}, 256)
	a.NoError(err)
	rv := NewRootVectorDouble(5)

	out := RestartDouble(ctx, poly, rv, []int{0}, 0, 0)
	a.Equal(RestartSkipped, out)
}

func TestRestartDoubleIneligibleClusterSkipped(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	poly, err := NewPolynomial([]complex128{-1, 0, 0, 0, 0, 1}, 256)
	a.NoError(err)
	rv := NewRootVectorDouble(5)
	rv.Again[0] = false

	out := RestartDouble(ctx, poly, rv, []int{0, 1}, 0, 0)
	a.Equal(RestartSkipped, out)
}

func TestRestartDoubleStraddlingOriginSkipped(t *testing.T) {
	a := assert.New(t)

	ctx := NewSolveContext(DefaultConfig())
	poly, err := NewPolynomial([]complex128{-1, 0, 0, 0, 0, 1}, 256)
	a.NoError(err)
	rv := NewRootVectorDouble(5)
	// Two members straddling the origin: sc ~ 0, sr large relative to |sc|.
	rv.RootsDouble[0] = complex(1, 0)
	rv.RootsDouble[1] = complex(-1, 0)
	rv.RadDouble[0] = 0.1
	rv.RadDouble[1] = 0.1

	out := RestartDouble(ctx, poly, rv, []int{0, 1}, 0, 0)
	a.Equal(RestartSkipped, out)
	a.Equal(StatusIterating, rv.Status[0][0])
}

func TestDerivativeCoeffsOfCubicIsLinear(t *testing.T) {
	a := assert.New(t)

	// p(x) = x^3, p'(x) = 3x^2, p''(x) = 6x
	poly, err := NewPolynomial([]complex128{0, 0, 0, 1}, kind.BasePrecision)
	a.NoError(err)

	d1 := derivativeCoeffs(poly.FullCoeffs(), 1, kind.BasePrecision)
	a.Len(d1, 3)
	v, _ := d1[2].Re.Float64()
	a.InDelta(3.0, v, 1e-9)

	d2 := derivativeCoeffs(poly.FullCoeffs(), 2, kind.BasePrecision)
	a.Len(d2, 2)
	v2, _ := d2[1].Re.Float64()
	a.InDelta(6.0, v2, 1e-9)
}
