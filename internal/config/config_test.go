package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 300, cfg.CacheTimeout)
	assert.Equal(t, "Sheet1!A1:Z1000", cfg.SheetRange)
	assert.Equal(t, "credentials.json", cfg.CredentialsFile)
	assert.Equal(t, "sample_data.json", cfg.FallbackFile)
	assert.True(t, cfg.BarcodeEnabled)
	assert.False(t, cfg.MapExtendedColumns)
	assert.False(t, cfg.SheetConfigured(), "placeholder sheet id must count as unconfigured")
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_ID", "1AbCdEf")
	t.Setenv("CACHE_TIMEOUT", "60")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "False")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.SheetConfigured())
	assert.Equal(t, 60*time.Second, cfg.CacheTTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{Port: "5000", SheetRange: "Sheet1!A1:Z1000", CacheTimeout: -1}
	assert.Error(t, c.Validate())

	c.CacheTimeout = 0
	assert.NoError(t, c.Validate())

	c.SheetRange = " "
	assert.Error(t, c.Validate())
}

func TestConfig_SheetName(t *testing.T) {
	c := &Config{SheetRange: "Licenses!A1:R500"}
	assert.Equal(t, "Licenses", c.SheetName())

	c.SheetRange = "'My Sheet'!A:A"
	assert.Equal(t, "My Sheet", c.SheetName())

	c.SheetRange = "A1:Z1000"
	assert.Equal(t, "Sheet1", c.SheetName())
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	assert.True(t, c.IsDev())

	c.Env = "production"
	assert.False(t, c.IsDev())
}
