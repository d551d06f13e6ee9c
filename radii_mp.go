package mpstart

import (
	"math"

	"github.com/polyroots/mpstart/kind"
)

// BuildRadiiMP is Radii builder (C3) at the multiprecision tier.
func BuildRadiiMP(clusterRad kind.MP, g, delta float64, moduli []kind.MP, prec uint) ([]kind.MP, []int, int) {
	y := logModuliMP(moduli)
	epsMachineLog := -float64(prec) * ln2Radii
	y = fillZeroLogs(y, g, kind.LogMP(kind.MPMin(prec)), epsMachineLog)

	logRadii, partitioning := logAnnuli(y)

	radii := make([]kind.MP, len(logRadii))
	for i, lr := range logRadii {
		m, _ := kind.MPFromLog(lr, prec)
		radii[i] = clampMP(m, clusterRad, prec)
	}

	radii, partitioning = compactMP(radii, partitioning, delta, prec)
	return radii, partitioning, len(radii)
}

const ln2Radii = 0.6931471805599453094172321214581765680755001343602552541206800094

func logModuliMP(moduli []kind.MP) []float64 {
	y := make([]float64, len(moduli))
	for i, m := range moduli {
		if m.IsZero() {
			y[i] = math.Inf(-1)
		} else {
			y[i] = kind.LogMP(m)
		}
	}
	return y
}

func clampMP(m, clusterRad kind.MP, prec uint) kind.MP {
	switch {
	case m.Cmp(kind.MPMin(prec)) < 0:
		m = kind.MPMin(prec)
	case m.Cmp(kind.MPMax(prec)) > 0:
		m = kind.MPMax(prec)
	}
	if !clusterRad.IsZero() && m.Cmp(clusterRad) > 0 {
		m = clusterRad
	}
	return m
}

func compactMP(radii []kind.MP, partitioning []int, delta float64, prec uint) ([]kind.MP, []int) {
	if len(radii) == 0 {
		return radii, partitioning
	}

	outRadii := make([]kind.MP, 0, len(radii))
	outPartitioning := []int{partitioning[0]}

	i := 0
	for i < len(radii) {
		j := i + 1
		for j < len(radii) && radii[j].Sub(radii[i]).Div(radii[i]).Float64() <= delta {
			j++
		}
		sum := kind.MPFromFloat64(0, prec)
		for k := i; k < j; k++ {
			sum = sum.Add(radii[k])
		}
		outRadii = append(outRadii, sum.Div(kind.MPFromFloat64(float64(j-i), prec)))
		outPartitioning = append(outPartitioning, partitioning[j])
		i = j
	}
	return outRadii, outPartitioning
}
