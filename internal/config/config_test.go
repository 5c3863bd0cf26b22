package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndMatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[dedup]
first_name_weight = 0.25
last_name_weight = 0.25
company_weight = 0.5
threshold = 0.9

[concurrency]
fuzzy_workers = 8

[llm]
provider = "ollama"
model = "llama3"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.LLM.Provider)

	mc := cfg.MatchConfig()
	assert.Equal(t, 0.5, mc.Weights.Company)
	assert.Equal(t, 0.9, mc.Threshold)
	assert.Equal(t, 8, mc.Workers)
	assert.NoError(t, mc.Validate())
}

func TestMatchConfigDefaults(t *testing.T) {
	cfg := &Config{}
	mc := cfg.MatchConfig()
	assert.Equal(t, 0.85, mc.Threshold)
	assert.Equal(t, 0.4, mc.Weights.Company)
	assert.NoError(t, mc.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.toml")
	assert.Error(t, err)
}
