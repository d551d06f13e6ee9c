package mpstart

import (
	"math/big"

	"github.com/polyroots/mpstart/kind"
)

// RestartMP runs Restart (C5) for one cluster at the multiprecision tier.
func RestartMP(ctx *SolveContext, poly *Polynomial, rv *RootVector, members []int, iCluster, prevClusterSize int, prec uint) RestartOutcome {
	m := len(members)
	if m <= 1 {
		return RestartSkipped
	}
	if !clusterEligible(rv, members, ctx.Config.IsCountGoal()) {
		return RestartSkipped
	}

	memberSet := make(map[int]bool, m)
	sumW := kind.MPFromFloat64(0, prec)
	sumWRe := new(big.Float).SetPrec(prec)
	sumWIm := new(big.Float).SetPrec(prec)
	for _, l := range members {
		memberSet[l] = true
		w := rv.RadMP[l]
		sumW = sumW.Add(w)
		scaled := rv.RootsMP[l].ScaleMP(w)
		sumWRe = new(big.Float).SetPrec(prec).Add(sumWRe, scaled.Re)
		sumWIm = new(big.Float).SetPrec(prec).Add(sumWIm, scaled.Im)
	}
	sc := kind.MPComplex{
		Re: new(big.Float).SetPrec(prec).Quo(sumWRe, sumW.Float()),
		Im: new(big.Float).SetPrec(prec).Quo(sumWIm, sumW.Float()),
	}

	sr := kind.MPFromFloat64(0, prec)
	for _, l := range members {
		d := sc.Sub(rv.RootsMP[l]).Abs().Add(rv.RadMP[l])
		if d.Cmp(sr) > 0 {
			sr = d
		}
	}

	if sr.Cmp(sc.Abs()) > 0 {
		markClusterIterating(rv, members)
		return RestartSkipped
	}

	// Step 4, multiprecision form: accumulate sr/(|sc-root[p]|-sr-rad[p])
	// over every non-member root; require the sum not exceed 0.3.
	sum := 0.0
	for p := 0; p < rv.N(); p++ {
		if memberSet[p] {
			continue
		}
		denom := sc.Sub(rv.RootsMP[p]).Abs().Sub(sr).Sub(rv.RadMP[p]).Float64()
		if denom <= 0 {
			markClusterIterating(rv, members)
			return RestartSkipped
		}
		sum += sr.Float64() / denom
	}
	if sum > 0.3 {
		markClusterIterating(rv, members)
		return RestartSkipped
	}

	derived := derivativeCoeffs(poly.FullCoeffs(), uint(m-1), prec)

	g := sc
	radPrev := sr
	converged := false
	for it := 0; it < ctx.Config.MaxNewtonIterations; it++ {
		corr, cont := NewtonStepMP(derived, g, radPrev)
		g = g.Sub(corr)
		radPrev = corr.Abs()
		if !cont {
			converged = true
			break
		}
	}
	if !converged {
		ctx.logf("restart mp: cluster %d local Newton did not converge in %d iterations at prec %d", iCluster, ctx.Config.MaxNewtonIterations, prec)
		return RestartAborted
	}

	if sc.Sub(g).Abs().Cmp(sr) > 0 {
		return RestartAborted
	}

	preShiftSR := sr

	shiftResult := ShiftMP(ctx, poly.FullCoeffs(), g, m, ctx.Config.MPWorkingPrecision, ctx.Config.PrecOut)
	shiftedModuli := shiftResult.ModuliMP()

	// Snapshot every member's root/radius/status before PlaceMP overwrites
	// them in place, so step 10's "undo" can restore the pre-restart state
	// exactly if the relative-improvement gate below fails.
	savedRoots := make([]kind.MPComplex, m)
	savedRad := make([]kind.MP, m)
	savedStatus := make([][3]byte, m)
	for i, l := range members {
		savedRoots[i] = rv.RootsMP[l]
		savedRad[i] = rv.RadMP[l]
		savedStatus[i] = rv.Status[l]
	}

	localIndex := func(j int) int { return members[j] }
	PlaceMP(ctx, rv, shiftedModuli, false, iCluster, prevClusterSize, g.Abs().Float64(), sr, prec, localIndex)

	// Step 10: relative-improvement guard, multiprecision only. The new
	// super-radius is recomputed from the freshly placed local roots; if
	// Shift didn't buy at least a 4x tighter enclosure, undo the placement
	// above and skip rather than rewrite the members.
	postSR := kind.MPFromFloat64(0, prec)
	for _, l := range members {
		d := rv.RootsMP[l].Abs().Add(rv.RadMP[l])
		if d.Cmp(postSR) > 0 {
			postSR = d
		}
	}
	threshold := preShiftSR.Mul(kind.MPFromFloat64(0.25, prec))
	if postSR.Cmp(threshold) >= 0 {
		for i, l := range members {
			rv.RootsMP[l] = savedRoots[i]
			rv.RadMP[l] = savedRad[i]
			rv.Status[l] = savedStatus[i]
		}
		markClusterIterating(rv, members)
		return RestartSkipped
	}

	for _, l := range members {
		newRad := kind.MPFromFloat64(2*float64(m), prec).Mul(rv.RootsMP[l].Abs())
		rv.RadMP[l] = newRad
		rv.RootsMP[l] = rv.RootsMP[l].Add(g)
		floor := g.Abs().Mul(kind.MPFromFloat64(2, prec)).Mul(kind.MPFromFloat64(ctx.Config.MPEpsilon, prec))
		if rv.RadMP[l].Cmp(floor) < 0 {
			rv.RadMP[l] = floor
		}
	}

	return RestartApplied
}
