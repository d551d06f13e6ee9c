package mpstart

import "math"

const doubleEps = 2.220446049250313e-16 // 2^-52, the double tier's machine epsilon

var (
	doubleSmallestPositive     = math.SmallestNonzeroFloat64
	doubleLargestRepresentable = math.MaxFloat64
)

// BuildRadiiDouble is Radii builder (C3) at the double tier.
func BuildRadiiDouble(clusterRad, g, delta float64, moduli []float64) ([]float64, []int, int) {
	y := logModuliDouble(moduli)
	y = fillZeroLogs(y, g, math.Log(doubleSmallestPositive), math.Log(doubleEps))

	logRadii, partitioning := logAnnuli(y)

	radii := make([]float64, len(logRadii))
	for i, lr := range logRadii {
		radii[i] = clampDouble(math.Exp(lr), clusterRad)
	}

	radii, partitioning = compactDouble(radii, partitioning, delta)
	return radii, partitioning, len(radii)
}

func logModuliDouble(moduli []float64) []float64 {
	y := make([]float64, len(moduli))
	for i, v := range moduli {
		if v == 0 {
			y[i] = math.Inf(-1)
		} else {
			y[i] = math.Log(v)
		}
	}
	return y
}

// clampDouble applies the unambiguous if/else-if/else clamp cascade: a
// radius below the tier's smallest positive magnitude or above its largest
// representable magnitude is saturated, and whenever a non-zero cluster
// radius is in force a radius may never exceed it either.
func clampDouble(r, clusterRad float64) float64 {
	switch {
	case r < doubleSmallestPositive:
		r = doubleSmallestPositive
	case r > doubleLargestRepresentable:
		r = doubleLargestRepresentable
	}
	if clusterRad != 0 && r > clusterRad {
		r = clusterRad
	}
	return r
}

// compactDouble is Radii builder step 4: adjacent annuli closer than the
// configured relative spacing delta are merged by averaging their radii,
// inheriting the upper slot boundary of the last merged annulus.
func compactDouble(radii []float64, partitioning []int, delta float64) ([]float64, []int) {
	if len(radii) == 0 {
		return radii, partitioning
	}

	outRadii := make([]float64, 0, len(radii))
	outPartitioning := []int{partitioning[0]}

	i := 0
	for i < len(radii) {
		j := i + 1
		for j < len(radii) && (radii[j]-radii[i])/radii[i] <= delta {
			j++
		}
		sum := 0.0
		for k := i; k < j; k++ {
			sum += radii[k]
		}
		outRadii = append(outRadii, sum/float64(j-i))
		outPartitioning = append(outPartitioning, partitioning[j])
		i = j
	}
	return outRadii, outPartitioning
}
