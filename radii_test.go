package mpstart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyroots/mpstart/kind"
)

func TestCompactDoubleMergesCloseAnnuli(t *testing.T) {
	a := assert.New(t)

	radii := []float64{1.0, 1.0001, 1.0002, 2.0}
	partitioning := []int{0, 1, 2, 3, 4}

	out, outP := compactDouble(radii, partitioning, 0.001)
	a.Len(out, 2)
	a.InDelta(1.0001, out[0], 1e-9)
	a.InDelta(2.0, out[1], 1e-9)
	a.Equal([]int{0, 3, 4}, outP)
}

func TestBuildRadiiDoubleMonomial(t *testing.T) {
	a := assert.New(t)

	// p(x) = x^5 - 1: moduli = [1, 0, 0, 0, 0, 1]
	moduli := []float64{1, 0, 0, 0, 0, 1}
	radii, partitioning, n := BuildRadiiDouble(0, 0, 1e-10, moduli)

	a.Equal(1, n)
	a.InDelta(1.0, radii[0], 1e-9)
	a.Equal([]int{0, 5}, partitioning)
}

func TestBuildRadiiDoubleClampsToClusterRad(t *testing.T) {
	a := assert.New(t)

	moduli := []float64{1e6, 1}
	radii, _, _ := BuildRadiiDouble(10, 0, 1e-10, moduli)
	for _, r := range radii {
		a.LessOrEqual(r, 10.0)
	}
}

func TestBuildRadiiDPEMatchesDouble(t *testing.T) {
	a := assert.New(t)

	dmoduli := []float64{1, 0, 0, 0, 0, 1}
	dradii, dpart, dn := BuildRadiiDouble(0, 0, 1e-10, dmoduli)

	moduli := make([]kind.DPE, len(dmoduli))
	for i, v := range dmoduli {
		moduli[i] = kind.FromFloat64(v)
	}
	radii, partitioning, n := BuildRadiiDPE(kind.DPEZero, 0, 1e-10, moduli)

	a.Equal(dn, n)
	a.Equal(dpart, partitioning)
	for i := range radii {
		a.InEpsilon(dradii[i], radii[i].Float64(), 1e-9)
	}
}

func TestBuildRadiiMPMatchesDouble(t *testing.T) {
	a := assert.New(t)

	dmoduli := []float64{1, 0, 0, 0, 0, 1}
	dradii, dpart, dn := BuildRadiiDouble(0, 0, 1e-10, dmoduli)

	moduli := make([]kind.MP, len(dmoduli))
	for i, v := range dmoduli {
		moduli[i] = kind.MPFromFloat64(v, kind.BasePrecision)
	}
	radii, partitioning, n := BuildRadiiMP(kind.MPFromFloat64(0, kind.BasePrecision), 0, 1e-10, moduli, kind.BasePrecision)

	a.Equal(dn, n)
	a.Equal(dpart, partitioning)
	for i := range radii {
		a.InEpsilon(dradii[i], radii[i].Float64(), 1e-9)
	}
}

func TestFillZeroLogsRecenteredSubproblem(t *testing.T) {
	a := assert.New(t)

	y := []float64{math.Log(2), math.Inf(-1), math.Log(3)}
	out := fillZeroLogs(y, 1.5, -700, -36)
	a.False(math.IsInf(out[1], -1))
}
