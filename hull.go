package mpstart

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ConvexHull computes the boolean vertex mask of the upper convex hull of
// the graph {(i, y[i])}, per SPEC_FULL.md §4.2. It is generic over any
// floating-point type because y is always a plain log-modulus value
// regardless of which arithmetic tier produced the underlying coefficient
// magnitude — natural log compresses even an astronomically wide exponent
// range down to something that fits comfortably in a float64 or float32.
//
// Entries equal to the type's negative infinity are treated as -∞ sentinels
// for vanished coefficients and are never selected as vertices (other than
// possibly the endpoints, which are always vertices).
func ConvexHull[T constraints.Float](y []T) []bool {
	n := len(y)
	h := make([]bool, n)
	if n == 0 {
		return h
	}

	h[0] = true
	h[n-1] = true
	if n <= 2 {
		for i := range h {
			h[i] = true
		}
		return h
	}

	// Monotone chain, upper hull only: maintain a stack of indices such
	// that consecutive turns bend clockwise (concave from above). A point
	// that would make the path turn left (or run straight) is not on the
	// hull and gets popped.
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if isNegInf(y[i]) && i != 0 && i != n-1 {
			continue
		}
		for len(stack) >= 2 {
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			if !shouldPop(a, b, i, y) {
				break
			}
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, i)
	}

	for _, idx := range stack {
		h[idx] = true
	}
	return h
}

// shouldPop reports whether b should be dropped from the upper hull given
// the candidate next point c, i.e. whether the turn a->b->c is a left turn
// or collinear (b lies on or below segment a-c).
func shouldPop[T constraints.Float](a, b, c int, y []T) bool {
	if isNegInf(y[a]) || isNegInf(y[b]) {
		return true
	}
	dx1, dy1 := float64(b-a), float64(y[b]-y[a])
	dx2, dy2 := float64(c-a), float64(y[c]-y[a])
	cross := dx1*dy2 - dy1*dx2
	return cross >= 0
}

func isNegInf[T constraints.Float](v T) bool {
	return math.IsInf(float64(v), -1)
}
