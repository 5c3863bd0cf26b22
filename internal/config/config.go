package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/prospecta/leadgen/internal/core/match"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// DedupConfig holds the matching knobs. Zero values fall back to the
// engine defaults, so a partial config file stays valid.
type DedupConfig struct {
	FirstNameWeight float64 `toml:"first_name_weight"`
	LastNameWeight  float64 `toml:"last_name_weight"`
	CompanyWeight   float64 `toml:"company_weight"`
	Threshold       float64 `toml:"threshold"`
	ReviewBand      float64 `toml:"review_band"`
}

type ConcurrencyConfig struct {
	FuzzyWorkers int `toml:"fuzzy_workers"`
}

type Config struct {
	LLM         LLMConfig         `toml:"llm"`
	Memgraph    MemgraphConfig    `toml:"memgraph"`
	Dedup       DedupConfig       `toml:"dedup"`
	Concurrency ConcurrencyConfig `toml:"concurrency"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// MatchConfig converts the file representation into the engine's config,
// filling unset values with the engine defaults.
func (c *Config) MatchConfig() match.Config {
	cfg := match.DefaultConfig()

	d := c.Dedup
	if d.FirstNameWeight > 0 || d.LastNameWeight > 0 || d.CompanyWeight > 0 {
		cfg.Weights = match.Weights{
			FirstName: d.FirstNameWeight,
			LastName:  d.LastNameWeight,
			Company:   d.CompanyWeight,
		}
	}
	if d.Threshold > 0 {
		cfg.Threshold = d.Threshold
	}
	if d.ReviewBand > 0 {
		cfg.ReviewBand = d.ReviewBand
	}
	if c.Concurrency.FuzzyWorkers > 0 {
		cfg.Workers = c.Concurrency.FuzzyWorkers
	}
	return cfg
}
