package mpstart

import "math"

// PlaceDouble is Placer (C4) at the double tier. moduli holds the degree+1
// coefficient moduli the annuli are built from (the whole polynomial at a
// fresh start, or the shifted sub-polynomial's moduli during a restart).
// gMag is the recentring magnitude (0 at a fresh start). rootIndex maps an
// annulus slot index to its RootVector slot; pass identityRootIndex at a
// fresh start.
func PlaceDouble(ctx *SolveContext, rv *RootVector, moduli []float64, userDefined bool, iCluster, prevClusterSize int, gMag, clusterRad float64, rootIndex func(int) int) {
	n := len(moduli) - 1
	sigma := ctx.Sigma(iCluster, n, prevClusterSize)

	if userDefined {
		for i := 0; i < n; i++ {
			l := rootIndex(i)
			theta := equispacedAngle(n, i, sigma)
			rv.RootsDouble[l] = complex(math.Cos(theta), math.Sin(theta))
		}
		return
	}

	radii, partitioning, nRadii := BuildRadiiDouble(clusterRad, gMag, ctx.Config.CircleRelativeDistance, moduli)
	th := 2 * math.Pi / float64(n)

	for i := 0; i < nRadii; i++ {
		r := radii[i]
		pLow, pHigh := partitioning[i], partitioning[i+1]
		nI := pHigh - pLow
		ang := 2 * math.Pi / float64(nI)

		for j := pLow; j < pHigh; j++ {
			jj := j - pLow
			l := rootIndex(j)
			theta := annulusAngle(ang, th, sigma, jj, pHigh)
			rv.RootsDouble[l] = complex(r*math.Cos(theta), r*math.Sin(theta))
			rv.RadDouble[l] = r
			if r == doubleSmallestPositive || r == doubleLargestRepresentable {
				rv.Status[l][0] = StatusDoubleOverflow
			}
		}

		if gMag != 0 && r*float64(nI) <= ctx.Config.EpsOut*gMag {
			for j := pLow; j < pHigh; j++ {
				l := rootIndex(j)
				rv.Status[l][0] = StatusOutputReady
				rv.RadDouble[l] = r * float64(nI)
			}
		}
	}
}
