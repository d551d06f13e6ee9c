package mpstart

import (
	"math"
	"math/big"

	"github.com/polyroots/mpstart/kind"
)

// Polynomial is the engine's view of the input polynomial P (SPEC_FULL.md
// §3): its degree, whether it is sparse (has exact zero coefficients), and
// its coefficients kept exactly (as MPComplex) so Shift's adaptive
// precision loop always has a faithful source to re-expand from. Per-tier
// moduli are derived on demand rather than cached, since they are cheap
// (one Abs() per coefficient) and a stale cache would be a correctness
// hazard across tier promotions.
type Polynomial struct {
	degree int
	sparse bool
	coeffs []kind.MPComplex // index i = coefficient of x^i, i in [0, degree]
}

// NewPolynomial builds a Polynomial from coefficients ordered from lowest
// to highest degree (coeffs[i] is the coefficient of x^i), matching the
// convention SPEC_FULL.md §3 and the teacher's field.Polynomial both use.
// basePrecision is the working precision, in bits, exact coefficients are
// stored at; it should be at least Config.MPWorkingPrecision.
func NewPolynomial(coeffs []complex128, basePrecision uint) (*Polynomial, error) {
	if len(coeffs) < 2 {
		return nil, ErrEmptyPolynomial
	}

	mp := make([]kind.MPComplex, len(coeffs))
	sparse := false
	for i, c := range coeffs {
		mp[i] = kind.MPComplex{
			Re: new(big.Float).SetPrec(basePrecision).SetFloat64(real(c)),
			Im: new(big.Float).SetPrec(basePrecision).SetFloat64(imag(c)),
		}
		if c == 0 {
			sparse = true
		}
	}

	return &Polynomial{degree: len(coeffs) - 1, sparse: sparse, coeffs: mp}, nil
}

// NewPolynomialFromBigComplex builds a Polynomial directly from exact
// MPComplex coefficients, for callers that already have arbitrary
// precision input (e.g. parsed from decimal strings) rather than
// hardware-double complex128 values.
func NewPolynomialFromBigComplex(coeffs []kind.MPComplex) (*Polynomial, error) {
	if len(coeffs) < 2 {
		return nil, ErrEmptyPolynomial
	}
	sparse := false
	for _, c := range coeffs {
		if c.Re.Sign() == 0 && c.Im.Sign() == 0 {
			sparse = true
		}
	}
	return &Polynomial{degree: len(coeffs) - 1, sparse: sparse, coeffs: coeffs}, nil
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int { return p.degree }

// IsSparse reports whether at least one coefficient is exactly zero.
func (p *Polynomial) IsSparse() bool { return p.sparse }

// FullCoeffs returns every exact coefficient (index i = coefficient of
// x^i), for callers that need the whole polynomial rather than one term —
// Shift and the restart controller's derivative computation.
func (p *Polynomial) FullCoeffs() []kind.MPComplex {
	out := make([]kind.MPComplex, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Coeff returns the exact coefficient of x^i at the requested precision.
func (p *Polynomial) Coeff(i int, prec uint) kind.MPComplex {
	c := p.coeffs[i]
	return kind.MPComplex{
		Re: new(big.Float).SetPrec(prec).Set(c.Re),
		Im: new(big.Float).SetPrec(prec).Set(c.Im),
	}
}

// ModuliDouble returns |a_i| for i in [0, degree] as hardware doubles.
func (p *Polynomial) ModuliDouble() []float64 {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		reF, _ := c.Re.Float64()
		imF, _ := c.Im.Float64()
		out[i] = absComplex(reF, imF)
	}
	return out
}

// ModuliDPE returns |a_i| for i in [0, degree] as DPE magnitudes.
func (p *Polynomial) ModuliDPE() []kind.DPE {
	out := make([]kind.DPE, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = kind.DPEComplex{Re: kind.FromBig(c.Re), Im: kind.FromBig(c.Im)}.Abs()
	}
	return out
}

// ModuliMP returns |a_i| for i in [0, degree] as MP magnitudes at the given
// working precision.
func (p *Polynomial) ModuliMP(prec uint) []kind.MP {
	out := make([]kind.MP, len(p.coeffs))
	for i, c := range p.coeffs {
		re := new(big.Float).SetPrec(prec).Set(c.Re)
		im := new(big.Float).SetPrec(prec).Set(c.Im)
		out[i] = kind.MPComplex{Re: re, Im: im}.Abs()
	}
	return out
}

func absComplex(re, im float64) float64 {
	return math.Hypot(re, im)
}

// bigFromFloat widens a hardware double into a *big.Float at the given
// precision, the conversion RootVector tier promotions use to carry
// existing double- or DPE-tier approximations up into the MP tier.
func bigFromFloat(v float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}
