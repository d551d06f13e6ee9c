package mpstart

import "github.com/polyroots/mpstart/kind"

// ModuliMP returns the moduli Radii builder should use for the shifted
// sub-problem. When the deflation's first pass never cleared its forward
// error bound, SPEC_FULL.md §4.6 has this return |c[0]| uniformly instead
// of the (untrustworthy) individual deflated moduli.
func (sr ShiftResult) ModuliMP() []kind.MP {
	out := make([]kind.MP, len(sr.Coeffs))
	if sr.Degraded {
		flat := sr.Coeffs[0].Abs()
		for i := range out {
			out[i] = flat
		}
		return out
	}
	for i, c := range sr.Coeffs {
		out[i] = c.Abs()
	}
	return out
}

// ModuliDouble narrows ModuliMP down to hardware doubles, for a restart
// running at the double tier.
func (sr ShiftResult) ModuliDouble() []float64 {
	mp := sr.ModuliMP()
	out := make([]float64, len(mp))
	for i, m := range mp {
		out[i] = m.Float64()
	}
	return out
}

// ModuliDPE narrows ModuliMP down to DPE magnitudes, for a restart running
// at the DPE tier.
func (sr ShiftResult) ModuliDPE() []kind.DPE {
	mp := sr.ModuliMP()
	out := make([]kind.DPE, len(mp))
	for i, m := range mp {
		out[i] = kind.FromBig(m.Float())
	}
	return out
}
