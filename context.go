package mpstart

// Tier identifies which of the three arithmetic representations a call
// operates at.
type Tier int

const (
	TierDouble Tier = iota
	TierDPE
	TierMP
)

// SolveContext is the explicit, threaded-through-every-call home for the
// process-wide mutable state SPEC_FULL.md §9 insists never hide behind
// package globals: the angular scheduler's last_sigma, the cluster
// registry, configuration, and a diagnostic sink. One SolveContext is
// created per solve and lives for its whole duration, across tier
// promotions and restarts alike.
type SolveContext struct {
	Config   Config
	Registry *Registry
	Logger   Logger

	// LastSigma is C1's process-wide angular scheduler state. It is reset
	// to 0 at the start of each placement phase (see ResetScheduler).
	LastSigma float64
}

// NewSolveContext creates a solve context with the given configuration and
// a no-op logger. Use WithLogger to attach a real one.
func NewSolveContext(cfg Config) *SolveContext {
	return &SolveContext{
		Config: cfg,
		Logger: noopLogger{},
	}
}

// WithLogger attaches a diagnostic sink and returns the context for
// chaining.
func (ctx *SolveContext) WithLogger(l Logger) *SolveContext {
	ctx.Logger = l
	return ctx
}

// ResetScheduler zeroes last_sigma, as required whenever the first cluster
// of a new placement phase (fresh start or tier promotion) is placed.
func (ctx *SolveContext) ResetScheduler() {
	ctx.LastSigma = 0
}

func (ctx *SolveContext) logf(format string, args ...any) {
	if ctx.Logger != nil {
		ctx.Logger.Debugf(format, args...)
	}
}
