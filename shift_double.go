package mpstart

import "github.com/polyroots/mpstart/kind"

// ShiftDouble runs Shift (C6) for a restart at the double tier. The
// deflation arithmetic itself always runs at Polynomial's exact
// multiprecision representation — Shift's whole purpose is protecting the
// shifted constant term against catastrophic cancellation, which a
// hardware-double Horner loop cannot do — so this just narrows the result
// down to the moduli the double-tier Radii builder and Placer consume.
func ShiftDouble(ctx *SolveContext, coeffs []kind.MPComplex, g complex128, m int, basePrec, precOut uint) ([]float64, bool) {
	gMP := kind.MPComplex{
		Re: bigFromFloat(real(g), basePrec),
		Im: bigFromFloat(imag(g), basePrec),
	}
	result := ShiftMP(ctx, coeffs, gMP, m, basePrec, precOut)
	return result.ModuliDouble(), result.Degraded
}
