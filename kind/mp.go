package kind

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// BasePrecision is the default working precision, in bits, new MP values are
// created at when no explicit precision is requested.
const BasePrecision = 256

// MP wraps a *big.Float magnitude. The constructors store non-negative
// values, but Sub returns the signed difference, which may be negative; Shift and
// the restart controller use plain *big.Float directly for signed
// quantities (centres, shifts) and reach for MP only where the spec calls
// for a tier-aware magnitude (radii, inclusion radii).
type MP struct {
	v *big.Float
}

// NewMP wraps f (which must already be non-negative) at its own precision.
func NewMP(f *big.Float) MP {
	return MP{v: f}
}

// MPFromFloat64 builds an MP value at the given working precision.
func MPFromFloat64(v float64, prec uint) MP {
	return MP{v: new(big.Float).SetPrec(prec).SetFloat64(math.Abs(v))}
}

// Float returns the underlying *big.Float.
func (m MP) Float() *big.Float { return m.v }

// Precision returns the current working precision, in bits.
func (m MP) Precision() uint {
	if m.v == nil {
		return BasePrecision
	}
	return m.v.Prec()
}

// RaisePrecision returns a copy of m carrying precision bits of precision,
// its value re-rounded at the new precision. Per design note "precision as
// data", this never mutates m; the caller decides when to adopt the result
// and when to restore the previous precision.
func (m MP) RaisePrecision(precision uint) MP {
	if m.v == nil {
		return MP{v: new(big.Float).SetPrec(precision)}
	}
	return MP{v: new(big.Float).SetPrec(precision).Set(m.v)}
}

// IsZero reports whether m is exactly zero.
func (m MP) IsZero() bool { return m.v == nil || m.v.Sign() == 0 }

// Add returns m + o, at the larger of the two operand precisions.
func (m MP) Add(o MP) MP {
	p := maxPrec(m, o)
	return MP{v: new(big.Float).SetPrec(p).Add(m.v, o.v)}
}

// Sub returns m - o.
func (m MP) Sub(o MP) MP {
	p := maxPrec(m, o)
	return MP{v: new(big.Float).SetPrec(p).Sub(m.v, o.v)}
}

// Mul returns m * o.
func (m MP) Mul(o MP) MP {
	p := maxPrec(m, o)
	return MP{v: new(big.Float).SetPrec(p).Mul(m.v, o.v)}
}

// Div returns m / o.
func (m MP) Div(o MP) MP {
	p := maxPrec(m, o)
	return MP{v: new(big.Float).SetPrec(p).Quo(m.v, o.v)}
}

// Cmp compares two MP magnitudes.
func (m MP) Cmp(o MP) int { return m.v.Cmp(o.v) }

// Float64 returns an approximate hardware-double view of m, for logging and
// angle arithmetic only.
func (m MP) Float64() float64 {
	if m.v == nil {
		return 0
	}
	f, _ := m.v.Float64()
	return f
}

func maxPrec(a, b MP) uint {
	pa, pb := a.Precision(), b.Precision()
	if pa > pb {
		return pa
	}
	return pb
}

// MPMin and MPMax are the smallest positive and largest representable MP
// magnitudes before the engine treats a value as unrepresentable at this
// tier. math/big.Float supports an enormous but still finite exponent
// range (MinExp/MaxExp); this engine stays comfortably inside it rather
// than push all the way to the edge, leaving headroom for the arithmetic
// that builds these bounds in the first place.
var (
	mpMinExp = big.MinExp + 1<<20
	mpMaxExp = big.MaxExp - 1<<20
)

// MPMin returns the smallest positive representable MP magnitude at the
// given precision.
func MPMin(prec uint) MP {
	f := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), mpMinExp)
	return MP{v: f}
}

// MPMax returns the largest representable MP magnitude at the given
// precision.
func MPMax(prec uint) MP {
	f := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), mpMaxExp)
	return MP{v: f}
}

// LogMP returns the natural logarithm of |m| as a plain float64. As with the
// DPE tier, this is safe across the whole MP range: log compresses even an
// astronomically large exponent down to a value that fits comfortably in a
// double.
func LogMP(m MP) float64 {
	if m.IsZero() {
		return math.Inf(-1)
	}
	v := new(big.Float).SetPrec(m.Precision()).Abs(m.v)
	l := bigfloat.Log(v)
	f, _ := l.Float64()
	return f
}

// MPFromLog builds the MP magnitude exp(logVal) at the requested precision,
// saturating to MPMin/MPMax when the value is outside this tier's
// representable exponent range. The bool result reports whether clamping
// occurred.
func MPFromLog(logVal float64, prec uint) (MP, bool) {
	if math.IsInf(logVal, -1) {
		return MP{v: new(big.Float).SetPrec(prec)}, false
	}
	lo, hi := mpMinExp, mpMaxExp
	logLo := float64(lo) * ln2
	logHi := float64(hi) * ln2
	if logVal < logLo {
		return MPMin(prec), true
	}
	if logVal > logHi {
		return MPMax(prec), true
	}
	arg := new(big.Float).SetPrec(prec).SetFloat64(logVal)
	v := bigfloat.Exp(arg)
	return MP{v: v}, false
}

const ln2 = 0.6931471805599453094172321214581765680755001343602552541206800094
