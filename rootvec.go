package mpstart

import "github.com/polyroots/mpstart/kind"

// Status characters, per SPEC_FULL.md §3.
const (
	StatusIterating      byte = 'c' // status[0]: still iterating
	StatusOutputReady    byte = 'o' // status[0]: cluster width below target eps
	StatusUnrepresented  byte = 'f' // status[0]: unrepresentable at this tier (DPE/MP)
	StatusDoubleOverflow byte = 'x' // status[0]: unrepresentable at the double tier only

	IsolationUnknown    byte = 'u' // status[2]
	IsolationInProgress byte = 'i' // status[2]
)

// RootVector is the engine's root approximation array R (SPEC_FULL.md §3):
// n complex approximations at the *current* tier, each carrying a 3-byte
// status, an again flag, and an inclusion-radius estimate. Exactly one of
// the RootsDouble/RootsDPE/RootsMP (and corresponding Rad*) slices is
// populated at a time; Tier says which.
type RootVector struct {
	Tier Tier

	Status [][3]byte
	Again  []bool

	RootsDouble []complex128
	RadDouble   []float64

	RootsDPE []kind.DPEComplex
	RadDPE   []kind.DPE

	RootsMP []kind.MPComplex
	RadMP   []kind.MP
}

func freshMeta(n int) ([][3]byte, []bool) {
	status := make([][3]byte, n)
	again := make([]bool, n)
	for i := range status {
		status[i] = [3]byte{StatusIterating, 0, IsolationUnknown}
		again[i] = true
	}
	return status, again
}

// NewRootVectorDouble allocates an n-root vector at the double tier.
func NewRootVectorDouble(n int) *RootVector {
	status, again := freshMeta(n)
	return &RootVector{
		Tier:        TierDouble,
		Status:      status,
		Again:       again,
		RootsDouble: make([]complex128, n),
		RadDouble:   make([]float64, n),
	}
}

// NewRootVectorDPE allocates an n-root vector at the DPE tier.
func NewRootVectorDPE(n int) *RootVector {
	status, again := freshMeta(n)
	return &RootVector{
		Tier:     TierDPE,
		Status:   status,
		Again:    again,
		RootsDPE: make([]kind.DPEComplex, n),
		RadDPE:   make([]kind.DPE, n),
	}
}

// NewRootVectorMP allocates an n-root vector at the multiprecision tier.
func NewRootVectorMP(n int) *RootVector {
	status, again := freshMeta(n)
	return &RootVector{
		Tier:    TierMP,
		Status:  status,
		Again:   again,
		RootsMP: make([]kind.MPComplex, n),
		RadMP:   make([]kind.MP, n),
	}
}

// N returns the number of roots.
func (r *RootVector) N() int {
	return len(r.Status)
}

// PromoteToDPE builds a DPE-tier root vector carrying over status/again and
// the current roots/radii widened to DPE, for a tier-promotion restart.
func (r *RootVector) PromoteToDPE() *RootVector {
	if r.Tier != TierDouble {
		panic("mpstart: PromoteToDPE requires a double-tier RootVector")
	}
	n := r.N()
	out := NewRootVectorDPE(n)
	copy(out.Status, r.Status)
	copy(out.Again, r.Again)
	for i := 0; i < n; i++ {
		out.RootsDPE[i] = kind.DPEComplex{
			Re: kind.FromFloat64(real(r.RootsDouble[i])),
			Im: kind.FromFloat64(imag(r.RootsDouble[i])),
		}
		out.RadDPE[i] = kind.FromFloat64(r.RadDouble[i])
		// status[l][0] == 'x' survives the promotion untouched: it is the
		// dpe_after_float marker PlaceDPE looks for to decide which roots
		// need re-examining at this tier.
	}
	return out
}

// PromoteToMP builds an MP-tier root vector at the given precision, carrying
// over status/again and widening the current roots/radii.
func (r *RootVector) PromoteToMP(prec uint) *RootVector {
	n := r.N()
	out := NewRootVectorMP(n)
	copy(out.Status, r.Status)
	copy(out.Again, r.Again)
	for i := 0; i < n; i++ {
		switch r.Tier {
		case TierDouble:
			out.RootsMP[i] = kind.MPComplex{
				Re: bigFromFloat(real(r.RootsDouble[i]), prec),
				Im: bigFromFloat(imag(r.RootsDouble[i]), prec),
			}
			out.RadMP[i] = kind.MPFromFloat64(r.RadDouble[i], prec)
		case TierDPE:
			out.RootsMP[i] = kind.MPComplex{
				Re: bigFromFloat(r.RootsDPE[i].Re.Float64(), prec),
				Im: bigFromFloat(r.RootsDPE[i].Im.Float64(), prec),
			}
			out.RadMP[i] = kind.MPFromFloat64(r.RadDPE[i].Float64(), prec)
		default:
			panic("mpstart: PromoteToMP requires a double- or DPE-tier RootVector")
		}
	}
	return out
}
