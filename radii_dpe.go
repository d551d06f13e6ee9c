package mpstart

import (
	"math"

	"github.com/polyroots/mpstart/kind"
)

// BuildRadiiDPE is Radii builder (C3) at the DPE tier.
func BuildRadiiDPE(clusterRad kind.DPE, g, delta float64, moduli []kind.DPE) ([]kind.DPE, []int, int) {
	y := logModuliDPE(moduli)
	y = fillZeroLogs(y, g, kind.Log(kind.DPEMin), math.Log(doubleEps))

	logRadii, partitioning := logAnnuli(y)

	radii := make([]kind.DPE, len(logRadii))
	for i, lr := range logRadii {
		d, _ := kind.FromLog(lr)
		radii[i] = clampDPE(d, clusterRad)
	}

	radii, partitioning = compactDPE(radii, partitioning, delta)
	return radii, partitioning, len(radii)
}

func logModuliDPE(moduli []kind.DPE) []float64 {
	y := make([]float64, len(moduli))
	for i, d := range moduli {
		if d.IsZero() {
			y[i] = math.Inf(-1)
		} else {
			y[i] = kind.Log(d)
		}
	}
	return y
}

// clampDPE is the clamp-cascade resolution of SPEC_FULL.md §9: an
// unambiguous if/else-if/else chain mirroring the double tier exactly.
func clampDPE(d, clusterRad kind.DPE) kind.DPE {
	switch {
	case d.Cmp(kind.DPEMin) < 0:
		d = kind.DPEMin
	case d.Cmp(kind.DPEMax) > 0:
		d = kind.DPEMax
	}
	if !clusterRad.IsZero() && d.Cmp(clusterRad) > 0 {
		d = clusterRad
	}
	return d
}

func compactDPE(radii []kind.DPE, partitioning []int, delta float64) ([]kind.DPE, []int) {
	if len(radii) == 0 {
		return radii, partitioning
	}

	outRadii := make([]kind.DPE, 0, len(radii))
	outPartitioning := []int{partitioning[0]}

	i := 0
	for i < len(radii) {
		j := i + 1
		for j < len(radii) && radii[j].Sub(radii[i]).Div(radii[i]).Float64() <= delta {
			j++
		}
		sum := kind.DPEZero
		for k := i; k < j; k++ {
			sum = sum.Add(radii[k])
		}
		outRadii = append(outRadii, sum.Div(kind.FromFloat64(float64(j-i))))
		outPartitioning = append(outPartitioning, partitioning[j])
		i = j
	}
	return outRadii, outPartitioning
}
