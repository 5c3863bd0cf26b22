package match

import "fmt"

// Weights are the per-field contributions to the fuzzy composite score.
// They must sum to 1.0.
type Weights struct {
	FirstName float64 `json:"first_name"`
	LastName  float64 `json:"last_name"`
	Company   float64 `json:"company"`
}

// Config is passed explicitly into every matching call. There is no
// process-wide mutable default, so concurrent batches with different
// thresholds cannot interfere.
type Config struct {
	Weights    Weights `json:"weights"`
	Threshold  float64 `json:"threshold"`
	ReviewBand float64 `json:"review_band"`
	Workers    int     `json:"workers"`
}

// DefaultConfig returns the documented defaults: name weights 0.3/0.3,
// company 0.4, match threshold 0.85 and a 0.05 review band below it.
func DefaultConfig() Config {
	return Config{
		Weights:    Weights{FirstName: 0.3, LastName: 0.3, Company: 0.4},
		Threshold:  0.85,
		ReviewBand: 0.05,
		Workers:    4,
	}
}

const weightEpsilon = 1e-9

// Validate rejects weight sets that do not sum to 1.0 and thresholds
// outside (0, 1].
func (c Config) Validate() error {
	if c.Weights.FirstName < 0 || c.Weights.LastName < 0 || c.Weights.Company < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", c.Weights)
	}
	sum := c.Weights.FirstName + c.Weights.LastName + c.Weights.Company
	if sum < 1-weightEpsilon || sum > 1+weightEpsilon {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", c.Threshold)
	}
	if c.ReviewBand < 0 || c.ReviewBand >= c.Threshold {
		return fmt.Errorf("review band must be in [0, threshold), got %v", c.ReviewBand)
	}
	return nil
}

// WithThreshold returns a copy of the config with the threshold replaced.
// Non-positive values keep the existing threshold.
func (c Config) WithThreshold(threshold float64) Config {
	if threshold > 0 {
		c.Threshold = threshold
	}
	return c
}
