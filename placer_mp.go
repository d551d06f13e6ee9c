package mpstart

import (
	"math"

	"github.com/polyroots/mpstart/kind"
)

// PlaceMP is Placer (C4) at the multiprecision tier.
func PlaceMP(ctx *SolveContext, rv *RootVector, moduli []kind.MP, userDefined bool, iCluster, prevClusterSize int, gMag float64, clusterRad kind.MP, prec uint, rootIndex func(int) int) {
	n := len(moduli) - 1
	sigma := ctx.Sigma(iCluster, n, prevClusterSize)

	if userDefined {
		for i := 0; i < n; i++ {
			l := rootIndex(i)
			theta := equispacedAngle(n, i, sigma)
			rv.RootsMP[l] = kind.FromPolarMP(kind.MPFromFloat64(1, prec), theta, prec)
		}
		return
	}

	radii, partitioning, nRadii := BuildRadiiMP(clusterRad, gMag, ctx.Config.CircleRelativeDistance, moduli, prec)
	th := 2 * math.Pi / float64(n)

	for i := 0; i < nRadii; i++ {
		r := radii[i]
		pLow, pHigh := partitioning[i], partitioning[i+1]
		nI := pHigh - pLow
		ang := 2 * math.Pi / float64(nI)
		extremal := r.Cmp(kind.MPMin(prec)) == 0 || r.Cmp(kind.MPMax(prec)) == 0

		for j := pLow; j < pHigh; j++ {
			jj := j - pLow
			l := rootIndex(j)
			theta := annulusAngle(ang, th, sigma, jj, pHigh)
			rv.RootsMP[l] = kind.FromPolarMP(r, theta, prec)
			rv.RadMP[l] = r
			if extremal {
				rv.Status[l][0] = StatusUnrepresented
			} else {
				rv.Status[l][0] = StatusIterating
			}
		}

		if gMag != 0 && r.Float64()*float64(nI) <= ctx.Config.EpsOut*gMag {
			for j := pLow; j < pHigh; j++ {
				l := rootIndex(j)
				rv.Status[l][0] = StatusOutputReady
				rv.RadMP[l] = kind.MPFromFloat64(r.Float64()*float64(nI), prec)
			}
		}
	}
}
