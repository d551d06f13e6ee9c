package mpstart

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// gcd computes the greatest common divisor of two non-negative integers of
// any integer width, generic so the scheduler never has to care whether
// cluster sizes are counted as int, int32, or anything else comparable.
func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Sigma implements the angular scheduler, C1: choosing the rotational
// offset for the i-th cluster placed so that successive annuli interleave
// rather than align. last_sigma is threaded through SolveContext rather
// than held as a package global, per SPEC_FULL.md §9.
//
// iCluster is the 0-based index of the cluster being placed in the current
// phase; n is its size; m is the size of the previously placed cluster
// (ignored when iCluster == 0).
func (ctx *SolveContext) Sigma(iCluster, n, m int) float64 {
	if ctx.Config.RandomSeed {
		return rand.Float64() * 2 * math.Pi
	}

	if iCluster == 0 {
		ctx.LastSigma = 0
		return 0
	}

	delta := math.Pi * float64(m) * float64(gcd(m, n)) / (4 * float64(n))
	ctx.LastSigma += delta
	return ctx.LastSigma
}
