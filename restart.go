package mpstart

import (
	"math/big"

	"github.com/polyroots/mpstart/kind"
)

// RestartOutcome tells the caller what a restart attempt on one cluster
// did, so a driver loop can decide whether to keep iterating that cluster
// or move to the next one.
type RestartOutcome int

const (
	RestartSkipped RestartOutcome = iota // eligibility/gate/isolation failed; members stay as-is
	RestartAborted                       // Newton or the gravity-bound check failed after committing to try
	RestartApplied                       // the cluster was shifted and its members rewritten
)

// clusterEligible is Restart step 1, shared across tiers since it only
// reads RootVector bookkeeping.
func clusterEligible(rv *RootVector, members []int, goalIsCount bool) bool {
	anyReady := false
	for _, l := range members {
		if !rv.Again[l] {
			return false
		}
		if rv.Status[l][0] == StatusIterating {
			switch rv.Status[l][2] {
			case IsolationUnknown:
				anyReady = true
			case IsolationInProgress:
				if !goalIsCount {
					anyReady = true
				}
			}
		}
	}
	return anyReady
}

func markClusterIterating(rv *RootVector, members []int) {
	for _, l := range members {
		rv.Status[l][0] = StatusIterating
	}
}

// derivativeCoeffs differentiates coeffs (index i = coefficient of x^i)
// `times` times via repeated index-weighted shifts: each application
// multiplies coefficient i by i and shifts it down to index i-1, per
// Restart step 5.
func derivativeCoeffs(coeffs []kind.MPComplex, times uint, prec uint) []kind.MPComplex {
	cur := coeffs
	for t := uint(0); t < times; t++ {
		if len(cur) <= 1 {
			zero := bigFromFloat(0, prec)
			return []kind.MPComplex{{Re: zero, Im: new(big.Float).SetPrec(prec)}}
		}
		next := make([]kind.MPComplex, len(cur)-1)
		for i := 1; i < len(cur); i++ {
			weight := kind.MPFromFloat64(float64(i), prec)
			next[i-1] = cur[i].ScaleMP(weight)
		}
		cur = next
	}
	return cur
}
