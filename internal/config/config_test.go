package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	// Run from a directory with no config.yaml so only defaults apply.
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Empty(t, cfg.Data.EnrolmentDir)
	assert.Equal(t, "outputs", cfg.Output.Dir)
	assert.False(t, cfg.Output.SkipCharts)
	assert.Equal(t, 10, cfg.Report.TopN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.InDelta(t, 0.25, cfg.Scorer.IDIWeight, 0.0001)
	assert.InDelta(t, 0.25, cfg.Scorer.GCIWeight, 0.0001)
	assert.InDelta(t, 0.20, cfg.Scorer.TCSWeight, 0.0001)
	assert.InDelta(t, 0.20, cfg.Scorer.YIRWeight, 0.0001)
	assert.InDelta(t, 0.10, cfg.Scorer.UBIWeight, 0.0001)
	assert.InDelta(t, 0.425, cfg.Scorer.UBIIdeal, 0.0001)
	assert.InDelta(t, 1.5, cfg.Scorer.YIRCap, 0.0001)
	assert.InDelta(t, 0.6, cfg.Scorer.YouthExclusionYIR, 0.0001)
	assert.InDelta(t, 70.0, cfg.Scorer.SprinterHealth, 0.0001)
	assert.InDelta(t, 0.8, cfg.Scorer.LeaderYIR, 0.0001)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `data:
  dir: /srv/aadhaar
output:
  dir: /tmp/out
  skip_charts: true
scorer:
  idi_weight: 0.3
report:
  top_n: 5
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(dir+"/config.yaml", []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/aadhaar", cfg.Data.Dir)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.True(t, cfg.Output.SkipCharts)
	assert.InDelta(t, 0.3, cfg.Scorer.IDIWeight, 0.0001)
	// Unset keys keep their defaults.
	assert.InDelta(t, 0.25, cfg.Scorer.GCIWeight, 0.0001)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("AADHAAR_DATA_DIR", "/env/data")
	t.Setenv("AADHAAR_REPORT_TOP_N", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/env/data", cfg.Data.Dir)
	assert.Equal(t, 3, cfg.Report.TopN)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
