package mpstart

import "github.com/polyroots/mpstart/kind"

// hornerEvalDouble evaluates p and p' at x simultaneously via nested
// synthetic division, coeffs ordered low-to-high degree.
func hornerEvalDouble(coeffs []complex128, x complex128) (p, dp complex128) {
	n := len(coeffs) - 1
	b := make([]complex128, n+1)
	b[n] = coeffs[n]
	for i := n - 1; i >= 0; i-- {
		b[i] = coeffs[i] + x*b[i+1]
	}
	p = b[0]
	if n == 0 {
		return p, 0
	}
	c := make([]complex128, n)
	c[n-1] = b[n]
	for i := n - 2; i >= 0; i-- {
		c[i] = b[i+1] + x*c[i+1]
	}
	dp = c[0]
	return p, dp
}

// NewtonStepDouble is the reference Newton-step collaborator (§6) at the
// double tier: corr = p(x)/p'(x), continuing while the correction strictly
// shrinks the previous step's radius.
func NewtonStepDouble(coeffs []complex128, x complex128, radPrev float64) (corr complex128, cont bool) {
	p, dp := hornerEvalDouble(coeffs, x)
	if dp == 0 {
		return 0, false
	}
	corr = p / dp
	cont = cAbs(corr) < radPrev
	return corr, cont
}

func cAbs(z complex128) float64 {
	re, im := real(z), imag(z)
	return absComplex(re, im)
}

func hornerEvalDPE(coeffs []kind.DPEComplex, x kind.DPEComplex) (p, dp kind.DPEComplex) {
	n := len(coeffs) - 1
	b := make([]kind.DPEComplex, n+1)
	b[n] = coeffs[n]
	for i := n - 1; i >= 0; i-- {
		b[i] = coeffs[i].Add(x.Mul(b[i+1]))
	}
	p = b[0]
	if n == 0 {
		return p, kind.DPEComplex{}
	}
	c := make([]kind.DPEComplex, n)
	c[n-1] = b[n]
	for i := n - 2; i >= 0; i-- {
		c[i] = b[i+1].Add(x.Mul(c[i+1]))
	}
	dp = c[0]
	return p, dp
}

// NewtonStepDPE is the reference Newton-step collaborator at the DPE tier.
func NewtonStepDPE(coeffs []kind.DPEComplex, x kind.DPEComplex, radPrev kind.DPE) (corr kind.DPEComplex, cont bool) {
	p, dp := hornerEvalDPE(coeffs, x)
	if dp.Abs().IsZero() {
		return kind.DPEComplex{}, false
	}
	corr = p.Div(dp)
	cont = corr.Abs().Cmp(radPrev) < 0
	return corr, cont
}

func hornerEvalMP(coeffs []kind.MPComplex, x kind.MPComplex) (p, dp kind.MPComplex) {
	n := len(coeffs) - 1
	b := make([]kind.MPComplex, n+1)
	b[n] = coeffs[n]
	for i := n - 1; i >= 0; i-- {
		b[i] = coeffs[i].Add(x.Mul(b[i+1]))
	}
	p = b[0]
	if n == 0 {
		return p, kind.MPComplex{}
	}
	c := make([]kind.MPComplex, n)
	c[n-1] = b[n]
	for i := n - 2; i >= 0; i-- {
		c[i] = b[i+1].Add(x.Mul(c[i+1]))
	}
	dp = c[0]
	return p, dp
}

// NewtonStepMP is the reference Newton-step collaborator at the
// multiprecision tier.
func NewtonStepMP(coeffs []kind.MPComplex, x kind.MPComplex, radPrev kind.MP) (corr kind.MPComplex, cont bool) {
	p, dp := hornerEvalMP(coeffs, x)
	if dp.Abs().IsZero() {
		return kind.MPComplex{}, false
	}
	corr = p.Div(dp)
	cont = corr.Abs().Cmp(radPrev) < 0
	return corr, cont
}
