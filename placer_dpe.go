package mpstart

import (
	"math"

	"github.com/polyroots/mpstart/kind"
)

// PlaceDPE is Placer (C4) at the DPE tier. When dpeAfterFloat is true, only
// roots whose status[l][0] is still 'x' (left behind by a double-tier
// overflow) are re-examined; every other root is left untouched, per
// SPEC_FULL.md §4.4's dpe_after_float mode.
func PlaceDPE(ctx *SolveContext, rv *RootVector, moduli []kind.DPE, userDefined, dpeAfterFloat bool, iCluster, prevClusterSize int, gMag float64, clusterRad kind.DPE, rootIndex func(int) int) {
	n := len(moduli) - 1
	sigma := ctx.Sigma(iCluster, n, prevClusterSize)

	needsPlacement := func(l int) bool {
		return !dpeAfterFloat || rv.Status[l][0] == StatusDoubleOverflow
	}

	if userDefined {
		for i := 0; i < n; i++ {
			l := rootIndex(i)
			if !needsPlacement(l) {
				continue
			}
			theta := equispacedAngle(n, i, sigma)
			rv.RootsDPE[l] = kind.FromPolarDPE(kind.FromFloat64(1), theta)
		}
		return
	}

	radii, partitioning, nRadii := BuildRadiiDPE(clusterRad, gMag, ctx.Config.CircleRelativeDistance, moduli)
	th := 2 * math.Pi / float64(n)

	for i := 0; i < nRadii; i++ {
		r := radii[i]
		pLow, pHigh := partitioning[i], partitioning[i+1]
		nI := pHigh - pLow
		ang := 2 * math.Pi / float64(nI)
		extremal := r.Cmp(kind.DPEMin) == 0 || r.Cmp(kind.DPEMax) == 0

		for j := pLow; j < pHigh; j++ {
			jj := j - pLow
			l := rootIndex(j)
			if !needsPlacement(l) {
				continue
			}
			theta := annulusAngle(ang, th, sigma, jj, pHigh)
			rv.RootsDPE[l] = kind.FromPolarDPE(r, theta)
			rv.RadDPE[l] = r
			if extremal {
				rv.Status[l][0] = StatusUnrepresented
			} else {
				rv.Status[l][0] = StatusIterating
			}
		}

		if gMag != 0 && r.Float64()*float64(nI) <= ctx.Config.EpsOut*gMag {
			for j := pLow; j < pHigh; j++ {
				l := rootIndex(j)
				if !needsPlacement(l) {
					continue
				}
				rv.Status[l][0] = StatusOutputReady
				rv.RadDPE[l] = kind.FromFloat64(r.Float64() * float64(nI))
			}
		}
	}
}
