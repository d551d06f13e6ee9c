package mpstart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootVectorDoubleDefaults(t *testing.T) {
	a := assert.New(t)

	r := NewRootVectorDouble(3)
	a.Equal(3, r.N())
	for i := 0; i < 3; i++ {
		a.True(r.Again[i])
		a.Equal(StatusIterating, r.Status[i][0])
		a.Equal(IsolationUnknown, r.Status[i][2])
	}
}

func TestPromoteToDPECarriesValuesAndMarker(t *testing.T) {
	a := assert.New(t)

	r := NewRootVectorDouble(2)
	r.RootsDouble[0] = complex(1, 2)
	r.RootsDouble[1] = complex(3, 4)
	r.RadDouble[0] = 0.5
	r.RadDouble[1] = 1.5
	r.Status[1][0] = StatusDoubleOverflow

	d := r.PromoteToDPE()
	a.Equal(TierDPE, d.Tier)
	a.InEpsilon(1.0, d.RootsDPE[0].Re.Float64(), 1e-9)
	a.InEpsilon(2.0, d.RootsDPE[0].Im.Float64(), 1e-9)
	a.InEpsilon(1.5, d.RadDPE[1].Float64(), 1e-9)
	a.Equal(StatusDoubleOverflow, d.Status[1][0])
}

func TestPromoteToMPFromDoubleAndDPE(t *testing.T) {
	a := assert.New(t)

	r := NewRootVectorDouble(1)
	r.RootsDouble[0] = complex(1, 1)
	r.RadDouble[0] = 2

	m := r.PromoteToMP(256)
	a.Equal(TierMP, m.Tier)
	reF, _ := m.RootsMP[0].Re.Float64()
	a.InEpsilon(1.0, reF, 1e-9)

	d := r.PromoteToDPE()
	m2 := d.PromoteToMP(256)
	reF2, _ := m2.RootsMP[0].Re.Float64()
	a.InEpsilon(1.0, reF2, 1e-9)
}
