// Package kind provides the three numeric representations the engine places
// roots in: hardware double (plain float64, handled inline by callers),
// double-with-extended-exponent (DPE), and arbitrary precision (MP, backed by
// math/big.Float).
package kind

import (
	"math"
	"math/big"
)

// ln10 is used to keep a DPE's mantissa in [1/10, 1) the way rdpe_t does in
// the reference implementation, so mantissa comparisons stay meaningful
// across very different exponents.
const ln10 = 2.302585092994045684017991454684364207601101488628772976033

// DPE is a double value with an extended, explicitly tracked decimal
// exponent: value = Mantissa * 10^Exp, with Mantissa in [0.1, 1) (or
// Mantissa == 0).
type DPE struct {
	Mantissa float64
	Exp      int64
}

// DPEMin and DPEMax are the smallest positive and largest representable DPE
// magnitudes this tier supports before falling back to tagging a root
// unrepresentable. The exponent range is wide enough to be for all practical
// purposes unbounded relative to hardware double, while still being a finite
// value a clamp can target.
var (
	DPEMin = DPE{Mantissa: 0.1, Exp: -1000000}
	DPEMax = DPE{Mantissa: 0.999999999999999, Exp: 1000000}
	DPEZero = DPE{Mantissa: 0, Exp: 0}
)

// NewDPE builds a normalized DPE from a mantissa and exponent.
func NewDPE(mantissa float64, exp int64) DPE {
	return normalize(mantissa, exp)
}

func normalize(mantissa float64, exp int64) DPE {
	if mantissa == 0 || math.IsNaN(mantissa) {
		return DPE{}
	}
	neg := mantissa < 0
	if neg {
		mantissa = -mantissa
	}
	for mantissa >= 1 {
		mantissa /= 10
		exp++
	}
	for mantissa < 0.1 {
		mantissa *= 10
		exp--
	}
	if neg {
		mantissa = -mantissa
	}
	return DPE{Mantissa: mantissa, Exp: exp}
}

// FromFloat64 converts a hardware double into a DPE.
func FromFloat64(v float64) DPE {
	if v == 0 {
		return DPEZero
	}
	// math.Frexp gives v = frac * 2^e with frac in [0.5, 1); convert the
	// binary exponent into our normalized decimal-mantissa form.
	frac, exp2 := math.Frexp(v)
	// frac*2^exp2 = frac * 10^(exp2*log10(2))
	return normalize(frac, 0).scaleByPow2(exp2)
}

// FromBig converts an arbitrary-precision *big.Float into a DPE, without
// ever materializing the value as a hardware double first (so it stays
// accurate even when f is outside float64's exponent range).
func FromBig(f *big.Float) DPE {
	if f.Sign() == 0 {
		return DPEZero
	}
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64() // mant is in (-1,-0.5]U[0.5,1), always double-safe
	return normalize(m, 0).scaleByPow2(exp)
}

// scaleByPow2 multiplies the receiver by 2^p, renormalizing.
func (d DPE) scaleByPow2(p int) DPE {
	if d.Mantissa == 0 {
		return d
	}
	m := d.Mantissa
	e := d.Exp
	for p > 0 {
		step := p
		if step > 300 {
			step = 300
		}
		m *= math.Pow(2, float64(step))
		p -= step
		nd := normalize(m, e)
		m, e = nd.Mantissa, nd.Exp
	}
	for p < 0 {
		step := p
		if step < -300 {
			step = -300
		}
		m *= math.Pow(2, float64(step))
		p -= step
		nd := normalize(m, e)
		m, e = nd.Mantissa, nd.Exp
	}
	return DPE{Mantissa: m, Exp: e}
}

// IsZero reports whether d represents the value 0.
func (d DPE) IsZero() bool { return d.Mantissa == 0 }

// Sign returns -1, 0 or 1.
func (d DPE) Sign() int {
	switch {
	case d.Mantissa > 0:
		return 1
	case d.Mantissa < 0:
		return -1
	default:
		return 0
	}
}

// Abs returns the absolute value.
func (d DPE) Abs() DPE {
	if d.Mantissa < 0 {
		return DPE{Mantissa: -d.Mantissa, Exp: d.Exp}
	}
	return d
}

// Neg returns the negation.
func (d DPE) Neg() DPE {
	return DPE{Mantissa: -d.Mantissa, Exp: d.Exp}
}

// Add returns d + o.
func (d DPE) Add(o DPE) DPE {
	if d.IsZero() {
		return o
	}
	if o.IsZero() {
		return d
	}
	if d.Exp < o.Exp {
		d, o = o, d
	}
	shift := d.Exp - o.Exp
	if shift > 18 {
		// o is utterly negligible next to d.
		return d
	}
	om := o.Mantissa * math.Pow(10, float64(-shift))
	return normalize(d.Mantissa+om, d.Exp)
}

// Sub returns d - o.
func (d DPE) Sub(o DPE) DPE { return d.Add(o.Neg()) }

// Mul returns d * o.
func (d DPE) Mul(o DPE) DPE {
	if d.IsZero() || o.IsZero() {
		return DPEZero
	}
	return normalize(d.Mantissa*o.Mantissa, d.Exp+o.Exp)
}

// Div returns d / o. Panics on division by zero, matching the contract that
// callers never divide by a zero radius.
func (d DPE) Div(o DPE) DPE {
	if o.IsZero() {
		panic("kind: DPE division by zero")
	}
	if d.IsZero() {
		return DPEZero
	}
	return normalize(d.Mantissa/o.Mantissa, d.Exp-o.Exp)
}

// Cmp compares |values| when both are non-negative magnitudes (the only use
// this engine makes of Cmp); for general signed comparison use Sub and Sign.
func (d DPE) Cmp(o DPE) int {
	diff := d.Sub(o)
	return diff.Sign()
}

// Float64 converts back to a hardware double, saturating to +-Inf on
// overflow and to 0 on underflow.
func (d DPE) Float64() float64 {
	if d.IsZero() {
		return 0
	}
	v := d.Mantissa * math.Pow(10, float64(d.Exp))
	return v
}

// Log returns the natural logarithm of |d| as a plain float64. This is safe
// across the entire DPE range: log compresses an exponent of +-10^6 down to
// a magnitude of a few million, trivially representable in a double.
func Log(d DPE) float64 {
	if d.IsZero() {
		return math.Inf(-1)
	}
	return math.Log(math.Abs(d.Mantissa)) + float64(d.Exp)*ln10
}

// FromLog builds the DPE magnitude exp(logVal), saturating to DPEMin/DPEMax
// when the value would otherwise overflow or underflow this tier's range.
// The bool result reports whether the value was clamped to an extremum.
func FromLog(logVal float64) (DPE, bool) {
	if math.IsInf(logVal, -1) {
		return DPEZero, false
	}
	exp := int64(math.Floor(logVal / ln10))
	mantissa := math.Exp(logVal - float64(exp)*ln10)
	d := normalize(mantissa, exp)
	switch {
	case d.Cmp(DPEMin) < 0:
		return DPEMin, true
	case d.Cmp(DPEMax) > 0:
		return DPEMax, true
	default:
		return d, false
	}
}
