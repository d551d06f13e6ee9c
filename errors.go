package mpstart

import "errors"

// Sentinel errors for the ambient boundary (configuration and polynomial
// construction). The numerical core itself never returns an error: failures
// there are categorical and expressed through status tags (see §7 of
// SPEC_FULL.md).
var (
	ErrDegreeMismatch  = errors.New("mpstart: coefficient slice length does not match degree+1")
	ErrNegativeModulus = errors.New("mpstart: coefficient modulus must be non-negative")
	ErrEmptyPolynomial = errors.New("mpstart: polynomial must have degree >= 1")

	ErrInvalidGoal          = errors.New("mpstart: goal must be non-empty")
	ErrInvalidDataType      = errors.New("mpstart: data_type must be non-empty")
	ErrNonPositiveTolerance = errors.New("mpstart: tolerances must be positive")
	ErrNonPositivePrecision = errors.New("mpstart: mpwp and prec_out must be positive")
	ErrMaxNewtonIterations  = errors.New("mpstart: max_newt_it must be positive")
)
