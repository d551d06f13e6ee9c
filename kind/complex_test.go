package kind

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDPEComplexAbs(t *testing.T) {
	a := assert.New(t)

	c := DPEComplex{Re: FromFloat64(3), Im: FromFloat64(4)}
	a.InEpsilon(5.0, c.Abs().Float64(), 1e-9)
}

func TestFromPolarDPEModulusAndAngle(t *testing.T) {
	a := assert.New(t)

	r, _ := FromLog(0) // modulus 1
	c := FromPolarDPE(r, math.Pi/2)

	a.InDelta(0, c.Re.Float64(), 1e-9)
	a.InDelta(1, c.Im.Float64(), 1e-9)
}

func TestDPEComplexMulAndDivRoundTrip(t *testing.T) {
	a := assert.New(t)

	c := DPEComplex{Re: FromFloat64(3), Im: FromFloat64(4)}
	o := DPEComplex{Re: FromFloat64(1), Im: FromFloat64(2)}

	prod := c.Mul(o)
	back := prod.Div(o)
	a.InEpsilon(3.0, back.Re.Float64(), 1e-9)
	a.InEpsilon(4.0, back.Im.Float64(), 1e-9)
}

func TestMPComplexAbs(t *testing.T) {
	a := assert.New(t)

	c := MPComplex{
		Re: new(big.Float).SetPrec(BasePrecision).SetFloat64(3),
		Im: new(big.Float).SetPrec(BasePrecision).SetFloat64(4),
	}
	a.InEpsilon(5.0, c.Abs().Float64(), 1e-9)
}

func TestMPComplexMulAndDivRoundTrip(t *testing.T) {
	a := assert.New(t)

	c := MPComplex{
		Re: new(big.Float).SetPrec(BasePrecision).SetFloat64(3),
		Im: new(big.Float).SetPrec(BasePrecision).SetFloat64(4),
	}
	o := MPComplex{
		Re: new(big.Float).SetPrec(BasePrecision).SetFloat64(1),
		Im: new(big.Float).SetPrec(BasePrecision).SetFloat64(2),
	}

	prod := c.Mul(o)
	back := prod.Div(o)
	reF, _ := back.Re.Float64()
	imF, _ := back.Im.Float64()
	a.InEpsilon(3.0, reF, 1e-9)
	a.InEpsilon(4.0, imF, 1e-9)
}

func TestFromPolarMPModulusAndAngle(t *testing.T) {
	a := assert.New(t)

	r := MPFromFloat64(1, BasePrecision)
	c := FromPolarMP(r, math.Pi/2, BasePrecision)

	reF, _ := c.Re.Float64()
	imF, _ := c.Im.Float64()
	a.InDelta(0, reF, 1e-9)
	a.InDelta(1, imF, 1e-9)
}
