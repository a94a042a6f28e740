package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"wallet/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromSettings(t *testing.T) {
	cfg, err := config.LoadConfig("../../settings")
	require.NoError(t, err)

	assert.Equal(t, config.API, cfg.Service.Type)
	assert.Equal(t, "8000", cfg.Service.Port)
	assert.Equal(t, filepath.Join("assets/PersonalFiles", "myMFPortfolio.csv"), cfg.Storage.Path(cfg.Storage.MutualFunds))
	assert.Equal(t, 500*time.Millisecond, cfg.Prices.RequestDelay)
	assert.Equal(t, 5*time.Minute, cfg.Prices.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.ExternalClients.Timeout)
	assert.Equal(t, 10, cfg.Import.MinPopulatedRows)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ".NS", cfg.ExternalClients.Yahoo.ExchangeSuffix)
	assert.Equal(t, "0 18 * * 1-5", cfg.Scheduler.SnapshotCron)
}

func TestLoadConfigEnvironmentOverride(t *testing.T) {
	t.Setenv("WALLET_SERVICE_PORT", "9090")
	t.Setenv("WALLET_SERVICE_TYPE", "WORKER")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Service.Port)
	assert.Equal(t, config.WORKER, cfg.Service.Type)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appsettings.yaml"), []byte("service: [unclosed"), 0o644))

	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}
