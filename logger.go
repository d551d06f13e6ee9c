package mpstart

// Logger receives the diagnostics §7 calls out ("log diagnostic if logging
// enabled") for bounded-iteration failures and precision escalation.
// NewSolveContext installs noopLogger, and a nil Logger is ignored, so
// callers that don't care about diagnostics never have to supply one.
type Logger interface {
	Debugf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
