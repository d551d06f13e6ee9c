package mpstart

import "github.com/polyroots/mpstart/kind"

// RestartDPE runs Restart (C5) for one cluster at the DPE tier. See
// RestartDouble for the shared shape; only the arithmetic differs.
func RestartDPE(ctx *SolveContext, poly *Polynomial, rv *RootVector, members []int, iCluster, prevClusterSize int) RestartOutcome {
	m := len(members)
	if m <= 1 {
		return RestartSkipped
	}
	if !clusterEligible(rv, members, ctx.Config.IsCountGoal()) {
		return RestartSkipped
	}

	memberSet := make(map[int]bool, m)
	sumW := kind.DPEZero
	sumWC := kind.DPEComplex{}
	for _, l := range members {
		memberSet[l] = true
		w := rv.RadDPE[l]
		sumW = sumW.Add(w)
		sumWC = sumWC.Add(rv.RootsDPE[l].ScaleDPE(w))
	}
	sc := kind.DPEComplex{Re: sumWC.Re.Div(sumW), Im: sumWC.Im.Div(sumW)}

	sr := kind.DPEZero
	for _, l := range members {
		d := sc.Sub(rv.RootsDPE[l]).Abs().Add(rv.RadDPE[l])
		if d.Cmp(sr) > 0 {
			sr = d
		}
	}

	if sr.Cmp(sc.Abs()) > 0 {
		markClusterIterating(rv, members)
		return RestartSkipped
	}

	n := rv.N()
	kn := kind.FromFloat64(isolationK * float64(n))
	for p := 0; p < n; p++ {
		if memberSet[p] {
			continue
		}
		lhs := sc.Sub(rv.RootsDPE[p]).Abs()
		rhs := sr.Add(rv.RadDPE[p]).Mul(kn)
		if lhs.Cmp(rhs) < 0 {
			markClusterIterating(rv, members)
			return RestartSkipped
		}
	}

	derived := derivativeCoeffs(poly.FullCoeffs(), uint(m-1), ctx.Config.MPWorkingPrecision)
	derivedDPE := make([]kind.DPEComplex, len(derived))
	for i, c := range derived {
		derivedDPE[i] = kind.DPEComplex{Re: kind.FromBig(c.Re), Im: kind.FromBig(c.Im)}
	}

	g := sc
	radPrev := sr
	converged := false
	for it := 0; it < ctx.Config.MaxNewtonIterations; it++ {
		corr, cont := NewtonStepDPE(derivedDPE, g, radPrev)
		g = g.Sub(corr)
		radPrev = corr.Abs()
		if !cont {
			converged = true
			break
		}
	}
	if !converged {
		ctx.logf("restart dpe: cluster %d local Newton did not converge in %d iterations", iCluster, ctx.Config.MaxNewtonIterations)
		return RestartAborted
	}

	if sc.Sub(g).Abs().Cmp(sr) > 0 {
		return RestartAborted
	}

	// The overflow guard at §4.5 step 8 is documented as double-tier only;
	// the DPE tier's whole purpose is the extended exponent range that
	// guard exists to work around, so it is skipped here.

	shiftedModuli, _ := ShiftDPE(ctx, poly.FullCoeffs(), g, m, ctx.Config.MPWorkingPrecision, ctx.Config.PrecOut)

	localIndex := func(j int) int { return members[j] }
	PlaceDPE(ctx, rv, shiftedModuli, false, false, iCluster, prevClusterSize, g.Abs().Float64(), sr, localIndex)

	for _, l := range members {
		mMag := kind.FromFloat64(float64(m))
		rv.RadDPE[l] = mMag.Mul(kind.FromFloat64(2)).Mul(rv.RootsDPE[l].Abs())
		rv.RootsDPE[l] = rv.RootsDPE[l].Add(g)
		floor := g.Abs().Mul(kind.FromFloat64(2 * doubleEps))
		if rv.RadDPE[l].Cmp(floor) < 0 {
			rv.RadDPE[l] = floor
		}
	}

	return RestartApplied
}
