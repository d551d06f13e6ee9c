package mpstart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvexHullEqualMagnitudesEndpointsOnly(t *testing.T) {
	a := assert.New(t)

	y := []float64{1, 1, 1, 1, 1}
	h := ConvexHull(y)

	a.True(h[0])
	a.True(h[len(y)-1])
	for i := 1; i < len(y)-1; i++ {
		a.False(h[i], "interior point %d should not be a vertex when all values are equal", i)
	}
}

func TestConvexHullConcaveIsAllVertices(t *testing.T) {
	a := assert.New(t)

	// strictly concave (each point above the segment of its neighbours)
	y := []float64{0, 3, 5, 6, 6.5}
	h := ConvexHull(y)

	for i := range y {
		a.True(h[i], "index %d expected on hull", i)
	}
}

func TestConvexHullDropsInteriorDip(t *testing.T) {
	a := assert.New(t)

	y := []float64{5, 1, 1, 5}
	h := ConvexHull(y)

	a.True(h[0])
	a.True(h[3])
	a.False(h[1])
	a.False(h[2])
}

func TestConvexHullSentinelNeverVertex(t *testing.T) {
	a := assert.New(t)

	negInf := math.Inf(-1)
	y := []float64{0, negInf, negInf, 1}
	h := ConvexHull(y)

	a.False(h[1])
	a.False(h[2])
	a.True(h[0])
	a.True(h[3])
}

func TestConvexHullSmallInputsAreAllVertices(t *testing.T) {
	a := assert.New(t)

	a.Equal([]bool{true}, ConvexHull([]float64{1}))
	a.Equal([]bool{true, true}, ConvexHull([]float64{1, 2}))
}
