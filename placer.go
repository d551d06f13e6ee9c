package mpstart

import "math"

// equispacedAngle is the user-defined-polynomial branch of Placer (step 1):
// n points equispaced on the unit circle.
func equispacedAngle(n, i int, sigma float64) float64 {
	return 2*math.Pi*float64(i)/float64(n) + sigma
}

// annulusAngle is Placer step 3's per-root angle: ang*jj + th*pHigh + sigma,
// shared across tiers since angles are always plain float64 trigonometry
// even at the DPE and multiprecision tiers (only the radius needs extended
// range).
func annulusAngle(ang, th, sigma float64, jj, pHigh int) float64 {
	return ang*float64(jj) + th*float64(pHigh) + sigma
}

// identityRootIndex is the root-index mapping Placer uses at a fresh start,
// where annulus slot j is root slot j directly (no recentred sub-cluster
// indirection through the cluster registry).
func identityRootIndex(j int) int { return j }
