package mpstart

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the configuration surface enumerated in SPEC_FULL.md §6.
// It is the only place in the engine where YAML is involved; everything
// downstream reads these as plain fields on a SolveContext.
type Config struct {
	RandomSeed             bool    `yaml:"random_seed"`
	CircleRelativeDistance float64 `yaml:"circle_relative_distance"`
	MaxNewtonIterations    int     `yaml:"max_newt_it"`
	EpsOut                 float64 `yaml:"eps_out"`
	Eps                    float64 `yaml:"eps"`
	MPEpsilon              float64 `yaml:"mp_epsilon"`
	Goal                   string  `yaml:"goal"`
	DataType               string  `yaml:"data_type"`
	MPWorkingPrecision     uint    `yaml:"mpwp"`
	PrecOut                uint    `yaml:"prec_out"`
}

// DefaultConfig returns the configuration the reference MPSolve-style solve
// uses absent any overrides: deterministic scheduling, a conservative
// compaction threshold, a bounded inner Newton loop, and base/output
// precisions wide enough for most practical polynomials.
func DefaultConfig() Config {
	return Config{
		RandomSeed:             false,
		CircleRelativeDistance: 0.01,
		MaxNewtonIterations:    10,
		EpsOut:                1e-10,
		Eps:                   1e-14,
		MPEpsilon:             1e-20,
		Goal:                  "isolate",
		DataType:              "moduli",
		MPWorkingPrecision:    256,
		PrecOut:               53,
	}
}

// LoadConfig reads a YAML configuration file, applying DefaultConfig for any
// zero-valued field the file leaves unset, then validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether cfg describes a usable engine configuration.
func (cfg Config) Validate() error {
	if cfg.Goal == "" {
		return ErrInvalidGoal
	}
	if cfg.DataType == "" {
		return ErrInvalidDataType
	}
	if cfg.EpsOut <= 0 || cfg.Eps <= 0 || cfg.MPEpsilon <= 0 || cfg.CircleRelativeDistance <= 0 {
		return ErrNonPositiveTolerance
	}
	if cfg.MPWorkingPrecision == 0 || cfg.PrecOut == 0 {
		return ErrNonPositivePrecision
	}
	if cfg.MaxNewtonIterations <= 0 {
		return ErrMaxNewtonIterations
	}
	return nil
}

// IsUserDefined reports whether data_type selects the user-defined
// placement bypass (§4.4 step 1): first character 'u'.
func (cfg Config) IsUserDefined() bool {
	return len(cfg.DataType) > 0 && cfg.DataType[0] == 'u'
}

// IsCountGoal reports whether goal selects counting mode (first character
// 'c'), which narrows Restart eligibility in §4.5 step 1.
func (cfg Config) IsCountGoal() bool {
	return len(cfg.Goal) > 0 && cfg.Goal[0] == 'c'
}
