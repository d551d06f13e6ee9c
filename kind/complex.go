package kind

import (
	"math"
	"math/big"
)

// DPEComplex is a complex number whose components are tracked as DPE
// magnitudes-with-sign, for the extended-exponent tier.
type DPEComplex struct {
	Re, Im DPE
}

// Abs returns the modulus of c as a DPE. Computed as
// sqrt(Re^2+Im^2) via the larger-component rescaling trick so it does not
// itself overflow when Re or Im is near DPEMax.
func (c DPEComplex) Abs() DPE {
	re, im := c.Re.Abs(), c.Im.Abs()
	if re.IsZero() && im.IsZero() {
		return DPEZero
	}
	larger, smaller := re, im
	if smaller.Cmp(larger) > 0 {
		larger, smaller = im, re
	}
	ratio := smaller.Div(larger)
	one := FromFloat64(1)
	sum := one.Add(ratio.Mul(ratio))
	return larger.Mul(sqrtDPE(sum))
}

func sqrtDPE(d DPE) DPE {
	logVal := Log(d) / 2
	r, _ := FromLog(logVal)
	return r
}

// Add returns c + o.
func (c DPEComplex) Add(o DPEComplex) DPEComplex {
	return DPEComplex{Re: c.Re.Add(o.Re), Im: c.Im.Add(o.Im)}
}

// Sub returns c - o.
func (c DPEComplex) Sub(o DPEComplex) DPEComplex {
	return DPEComplex{Re: c.Re.Sub(o.Re), Im: c.Im.Sub(o.Im)}
}

// Mul returns c * o, full complex multiplication.
func (c DPEComplex) Mul(o DPEComplex) DPEComplex {
	return DPEComplex{
		Re: c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im)),
		Im: c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re)),
	}
}

// Div returns c / o, full complex division. Panics if o is zero, matching
// DPE.Div's contract.
func (c DPEComplex) Div(o DPEComplex) DPEComplex {
	denom := o.Re.Mul(o.Re).Add(o.Im.Mul(o.Im))
	re := c.Re.Mul(o.Re).Add(c.Im.Mul(o.Im))
	im := c.Im.Mul(o.Re).Sub(c.Re.Mul(o.Im))
	return DPEComplex{Re: re.Div(denom), Im: im.Div(denom)}
}

// ScaleDPE returns c scaled by the (non-negative) magnitude m.
func (c DPEComplex) ScaleDPE(m DPE) DPEComplex {
	return DPEComplex{Re: c.Re.Mul(m), Im: c.Im.Mul(m)}
}

// FromPolarDPE builds a DPEComplex with modulus r and angle theta (theta is
// plain float64, computed with hardware trigonometry regardless of tier:
// only the radius needs extended range, see DESIGN.md).
func FromPolarDPE(r DPE, theta float64) DPEComplex {
	return DPEComplex{Re: r.Mul(FromFloat64(math.Cos(theta))), Im: r.Mul(FromFloat64(math.Sin(theta)))}
}

// MPComplex is a complex number with *big.Float components, for the
// multiprecision tier.
type MPComplex struct {
	Re, Im *big.Float
}

// Abs returns the modulus of c as an MP value.
func (c MPComplex) Abs() MP {
	prec := c.Re.Prec()
	if c.Im.Prec() > prec {
		prec = c.Im.Prec()
	}
	re2 := new(big.Float).SetPrec(prec).Mul(c.Re, c.Re)
	im2 := new(big.Float).SetPrec(prec).Mul(c.Im, c.Im)
	sum := new(big.Float).SetPrec(prec).Add(re2, im2)
	return MP{v: sqrtBig(sum)}
}

func sqrtBig(f *big.Float) *big.Float {
	return new(big.Float).SetPrec(f.Prec()).Sqrt(f)
}

// Add returns c + o.
func (c MPComplex) Add(o MPComplex) MPComplex {
	prec := maxUint(c.Re.Prec(), o.Re.Prec())
	return MPComplex{
		Re: new(big.Float).SetPrec(prec).Add(c.Re, o.Re),
		Im: new(big.Float).SetPrec(prec).Add(c.Im, o.Im),
	}
}

// Sub returns c - o.
func (c MPComplex) Sub(o MPComplex) MPComplex {
	prec := maxUint(c.Re.Prec(), o.Re.Prec())
	return MPComplex{
		Re: new(big.Float).SetPrec(prec).Sub(c.Re, o.Re),
		Im: new(big.Float).SetPrec(prec).Sub(c.Im, o.Im),
	}
}

// Mul returns c * o, full complex multiplication.
func (c MPComplex) Mul(o MPComplex) MPComplex {
	prec := maxUint(maxUint(c.Re.Prec(), c.Im.Prec()), maxUint(o.Re.Prec(), o.Im.Prec()))
	reTerm1 := new(big.Float).SetPrec(prec).Mul(c.Re, o.Re)
	reTerm2 := new(big.Float).SetPrec(prec).Mul(c.Im, o.Im)
	imTerm1 := new(big.Float).SetPrec(prec).Mul(c.Re, o.Im)
	imTerm2 := new(big.Float).SetPrec(prec).Mul(c.Im, o.Re)
	return MPComplex{
		Re: new(big.Float).SetPrec(prec).Sub(reTerm1, reTerm2),
		Im: new(big.Float).SetPrec(prec).Add(imTerm1, imTerm2),
	}
}

// Div returns c / o, full complex division.
func (c MPComplex) Div(o MPComplex) MPComplex {
	prec := maxUint(maxUint(c.Re.Prec(), c.Im.Prec()), maxUint(o.Re.Prec(), o.Im.Prec()))
	oRe2 := new(big.Float).SetPrec(prec).Mul(o.Re, o.Re)
	oIm2 := new(big.Float).SetPrec(prec).Mul(o.Im, o.Im)
	denom := new(big.Float).SetPrec(prec).Add(oRe2, oIm2)

	reTerm1 := new(big.Float).SetPrec(prec).Mul(c.Re, o.Re)
	reTerm2 := new(big.Float).SetPrec(prec).Mul(c.Im, o.Im)
	re := new(big.Float).SetPrec(prec).Add(reTerm1, reTerm2)

	imTerm1 := new(big.Float).SetPrec(prec).Mul(c.Im, o.Re)
	imTerm2 := new(big.Float).SetPrec(prec).Mul(c.Re, o.Im)
	im := new(big.Float).SetPrec(prec).Sub(imTerm1, imTerm2)

	return MPComplex{
		Re: new(big.Float).SetPrec(prec).Quo(re, denom),
		Im: new(big.Float).SetPrec(prec).Quo(im, denom),
	}
}

// ScaleMP returns c scaled by the non-negative magnitude m.
func (c MPComplex) ScaleMP(m MP) MPComplex {
	prec := maxUint(c.Re.Prec(), m.Precision())
	return MPComplex{
		Re: new(big.Float).SetPrec(prec).Mul(c.Re, m.v),
		Im: new(big.Float).SetPrec(prec).Mul(c.Im, m.v),
	}
}

// FromPolarMP builds an MPComplex with modulus r and angle theta (theta is
// plain float64; see FromPolarDPE for why).
func FromPolarMP(r MP, theta float64, prec uint) MPComplex {
	re := new(big.Float).SetPrec(prec).Mul(r.v, big.NewFloat(math.Cos(theta)))
	im := new(big.Float).SetPrec(prec).Mul(r.v, big.NewFloat(math.Sin(theta)))
	return MPComplex{Re: re, Im: im}
}

func maxUint(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
