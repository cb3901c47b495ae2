package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhmc-toolkit/zhmc/config"
)

func TestNewConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "zhmc", cfg.App.Name)
	assert.Equal(t, "6794", cfg.HMC.Port)
	assert.True(t, cfg.HMC.VerifyCert)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)

	// The default file was written for the next invocation.
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestNewConfigReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	content := `hmc:
  host: hmc1.example.com
  port: "6794"
  userid: opsuser
logger:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "hmc1.example.com", cfg.HMC.Host)
	assert.Equal(t, "opsuser", cfg.HMC.Userid)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	t.Setenv("HMC_HOST", "hmc2.example.com")
	t.Setenv("ZHMC_OUTPUT_FORMAT", "json")

	cfg, err := config.NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "hmc2.example.com", cfg.HMC.Host)
	assert.Equal(t, "json", cfg.Output.Format)
}
