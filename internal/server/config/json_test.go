package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")

	data := `{
		"endpoint_addr_http": ":9999",
		"database_dsn": "postgres://u:p@localhost:5432/db",
		"secret_key": "json-secret",
		"bcrypt_cost": 12
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.DatabaseDSN)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 12, cfg.BCryptCost)
}

func TestParseJson_NoFileFlagLeavesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":4000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "secret123", cfg.SecretKey)
}
