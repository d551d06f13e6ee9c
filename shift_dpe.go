package mpstart

import (
	"math/big"

	"github.com/polyroots/mpstart/kind"
)

// ShiftDPE runs Shift (C6) for a restart at the DPE tier, narrowing
// ShiftMP's result down to DPE moduli; see ShiftDouble for why the
// deflation itself always runs at full precision.
func ShiftDPE(ctx *SolveContext, coeffs []kind.MPComplex, g kind.DPEComplex, m int, basePrec, precOut uint) ([]kind.DPE, bool) {
	gMP := kind.MPComplex{
		Re: new(big.Float).SetPrec(basePrec).SetFloat64(g.Re.Float64()),
		Im: new(big.Float).SetPrec(basePrec).SetFloat64(g.Im.Float64()),
	}
	result := ShiftMP(ctx, coeffs, gMP, m, basePrec, precOut)
	return result.ModuliDPE(), result.Degraded
}
