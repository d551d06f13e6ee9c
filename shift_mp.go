package mpstart

import (
	"math/big"

	"github.com/polyroots/mpstart/kind"
)

// ShiftResult carries the Horner-deflation output and the working precision
// diagnostics SPEC_FULL.md §4.6's adaptive-precision multiprecision variant
// asks for: FinalPrec is the precision the first deflation pass eventually
// converged at (or was capped at), and Degraded reports whether it never
// passed the forward-error test, in which case Coeffs still holds the
// deflated coefficients and ModuliMP reports |c[0]| uniformly for all of them.
type ShiftResult struct {
	Coeffs    []kind.MPComplex
	FinalPrec uint
	Degraded  bool
}

// ShiftMP is Shift (C6). coeffs are the exact coefficients of p (index i =
// coefficient of x^i), g is the shift (the restart controller's gravity
// centre), m is the cluster size (only the first m+1 deflated coefficients
// are returned, per §4.6), basePrec is the precision unit the adaptive
// loop raises working precision by, and precOut is Config.PrecOut, used in
// the precision cap.
func ShiftMP(ctx *SolveContext, coeffs []kind.MPComplex, g kind.MPComplex, m int, basePrec uint, precOut uint) ShiftResult {
	n := len(coeffs) - 1
	wp := basePrec
	wpMax := basePrec
	cap_ := capPrecision(wpMax, precOut, m)

	var b []kind.MPComplex
	var degraded bool

	for {
		b = reExpandComplex(coeffs, wp)
		gw := lowerPrecComplex(g, wp)
		for j := n - 1; j >= 0; j-- {
			b[j] = b[j+1].Mul(gw).Add(b[j])
		}

		bound := forwardErrorBound(coeffs, g, n, wp)
		if b[0].Abs().Cmp(bound) > 0 {
			degraded = false
			break
		}
		if wp >= cap_ {
			degraded = true
			break
		}
		wp += basePrec
		if wp > wpMax {
			wpMax = wp
		}
		cap_ = capPrecision(wpMax, precOut, m)
		ctx.logf("shift mp: first deflation pass raised working precision to %d bits (cap %d)", wp, cap_)
	}

	c := make([]kind.MPComplex, m+1)
	c[0] = b[0]

	prevWP := wp
	for i := 1; i <= m; i++ {
		wpi := prevWP
		if wpi > basePrec {
			wpi -= basePrec
		}
		if wpi < basePrec {
			wpi = basePrec
		}
		b = lowerPrecComplexSlice(b, wpi)
		gw := lowerPrecComplex(g, wpi)
		for j := n - 1; j >= i; j-- {
			b[j] = b[j+1].Mul(gw).Add(b[j])
		}
		c[i] = b[i]
		prevWP = wpi
	}

	return ShiftResult{Coeffs: c, FinalPrec: wp, Degraded: degraded}
}

func capPrecision(wpMax uint, precOut uint, m int) uint {
	alt := precOut * uint(m) * 2
	if alt > wpMax {
		return alt
	}
	return wpMax
}

func reExpandComplex(coeffs []kind.MPComplex, prec uint) []kind.MPComplex {
	out := make([]kind.MPComplex, len(coeffs))
	for i, c := range coeffs {
		out[i] = lowerPrecComplex(c, prec)
	}
	return out
}

func lowerPrecComplex(c kind.MPComplex, prec uint) kind.MPComplex {
	return kind.MPComplex{
		Re: new(big.Float).SetPrec(prec).Set(c.Re),
		Im: new(big.Float).SetPrec(prec).Set(c.Im),
	}
}

func lowerPrecComplexSlice(cs []kind.MPComplex, prec uint) []kind.MPComplex {
	out := make([]kind.MPComplex, len(cs))
	for i, c := range cs {
		out[i] = lowerPrecComplex(c, prec)
	}
	return out
}

// forwardErrorBound computes 4(n+1)*eps_wp*sum_j(j*|g|^(n-j)*|a_j|), the
// test a converged first deflation pass must clear.
func forwardErrorBound(coeffs []kind.MPComplex, g kind.MPComplex, n int, wp uint) kind.MP {
	gAbs := g.Abs()
	sum := kind.MPFromFloat64(0, wp)
	for j := 1; j <= n; j++ {
		term := kind.MPFromFloat64(float64(j), wp).Mul(mpPow(gAbs, n-j, wp)).Mul(coeffs[j].Abs())
		sum = sum.Add(term)
	}
	eps := kind.NewMP(new(big.Float).SetPrec(wp).SetMantExp(big.NewFloat(1), -int(wp)))
	return kind.MPFromFloat64(4*float64(n+1), wp).Mul(eps).Mul(sum)
}

func mpPow(base kind.MP, k int, prec uint) kind.MP {
	result := kind.MPFromFloat64(1, prec)
	for i := 0; i < k; i++ {
		result = result.Mul(base)
	}
	return result
}
