package mpstart

import "math"

const isolationK = 5.0 // Newton-isolation's K factor at the double and DPE tiers

// RestartDouble runs Restart (C5) for one cluster at the double tier.
// members must be sorted ascending (as Registry.MembersOf returns them);
// iCluster/prevClusterSize feed the angular scheduler for re-placement.
func RestartDouble(ctx *SolveContext, poly *Polynomial, rv *RootVector, members []int, iCluster, prevClusterSize int) RestartOutcome {
	m := len(members)
	if m <= 1 {
		return RestartSkipped
	}

	if !clusterEligible(rv, members, ctx.Config.IsCountGoal()) {
		return RestartSkipped
	}

	// Step 2: super-centre and super-radius.
	memberSet := make(map[int]bool, m)
	var sumW float64
	var sumWRe, sumWIm float64
	for _, l := range members {
		memberSet[l] = true
		w := rv.RadDouble[l]
		sumW += w
		sumWRe += w * real(rv.RootsDouble[l])
		sumWIm += w * imag(rv.RootsDouble[l])
	}
	sc := complex(sumWRe/sumW, sumWIm/sumW)
	var sr float64
	for _, l := range members {
		d := cAbs(sc-rv.RootsDouble[l]) + rv.RadDouble[l]
		if d > sr {
			sr = d
		}
	}

	// Step 3: relative-width gate.
	if sr > cAbs(sc) {
		markClusterIterating(rv, members)
		return RestartSkipped
	}

	// Step 4: Newton-isolation, double form.
	n := rv.N()
	for p := 0; p < n; p++ {
		if memberSet[p] {
			continue
		}
		if cAbs(sc-rv.RootsDouble[p]) < (sr+rv.RadDouble[p])*isolationK*float64(n) {
			markClusterIterating(rv, members)
			return RestartSkipped
		}
	}

	// Step 5: coefficients of the (m-1)-st derivative, which feed local
	// Newton below. Their moduli are not computed or kept.
	derived := derivativeCoeffs(poly.FullCoeffs(), uint(m-1), ctx.Config.MPWorkingPrecision)
	derivedDouble := make([]complex128, len(derived))
	for i, c := range derived {
		reF, _ := c.Re.Float64()
		imF, _ := c.Im.Float64()
		derivedDouble[i] = complex(reF, imF)
	}

	// Step 6: local Newton from g <- sc.
	g := sc
	radPrev := sr
	converged := false
	for it := 0; it < ctx.Config.MaxNewtonIterations; it++ {
		corr, cont := NewtonStepDouble(derivedDouble, g, radPrev)
		g -= corr
		radPrev = cAbs(corr)
		if !cont {
			converged = true
			break
		}
	}
	if !converged {
		ctx.logf("restart double: cluster %d local Newton did not converge in %d iterations", iCluster, ctx.Config.MaxNewtonIterations)
		return RestartAborted
	}

	// Step 7: gravity-bound check.
	if cAbs(sc-g) > sr {
		return RestartAborted
	}

	// Step 8: double-tier overflow guard.
	sumModuli := 0.0
	for _, v := range poly.ModuliDouble() {
		sumModuli += v
	}
	if float64(n)*math.Log(cAbs(g))+math.Log(sumModuli) > math.Log(doubleLargestRepresentable) {
		return RestartSkipped
	}

	// Step 9: Shift.
	shiftedModuli, _ := ShiftDouble(ctx, poly.FullCoeffs(), g, m, ctx.Config.MPWorkingPrecision, ctx.Config.PrecOut)

	// Re-place the cluster's m members on the shifted sub-problem's
	// annuli before translating back, so step 11 has local root/rad
	// values to work from.
	localIndex := func(j int) int { return members[j] }
	PlaceDouble(ctx, rv, shiftedModuli, false, iCluster, prevClusterSize, cAbs(g), sr, localIndex)

	// Step 11: rewrite.
	for _, l := range members {
		rv.RadDouble[l] = 2 * float64(m) * cAbs(rv.RootsDouble[l])
		rv.RootsDouble[l] += g
		floor := 2 * cAbs(g) * doubleEps
		if rv.RadDouble[l] < floor {
			rv.RadDouble[l] = floor
		}
	}

	return RestartApplied
}
