package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000/api", c.APIBaseURL)
	assert.Empty(t, c.GoogleClientID)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "chargecli.db", c.DatabasePath)
	assert.Equal(t, "127.0.0.1:53682", c.CallbackAddr)
	assert.False(t, c.Verbose)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func Test_parseEnv_Overlays(t *testing.T) {
	t.Setenv("CHARGECLI_API_BASE_URL", "http://backend:8080/api")
	t.Setenv("CHARGECLI_REQUEST_TIMEOUT", "30s")
	t.Setenv("CHARGECLI_VERBOSE", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://backend:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "chargecli.db", cfg.DatabasePath, "unset variables keep defaults")
}
