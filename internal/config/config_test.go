package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "embroidery.db", cfg.Database.Path)
	assert.True(t, cfg.Validation.AllowNegative)
	assert.Equal(t, "theme.json", cfg.Settings.Path)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
database:
  driver: postgres
  host: db
  port: 5433
  user: u
  password: p
  dbname: embroidery
  sslmode: disable
validation:
  allow_negative: false
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.False(t, cfg.Validation.AllowNegative)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=embroidery sslmode=disable", cfg.Database.ConnString())
	assert.Equal(t, "postgres://u:p@db:5433/embroidery?sslmode=disable", cfg.Database.MigrateURL())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "database:\n  driver: oracle\n"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, "server: [unterminated"))

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabase_SQLiteURLs(t *testing.T) {
	d := Database{Driver: "sqlite", Path: "/tmp/x.db"}
	assert.Equal(t, "/tmp/x.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", d.ConnString())
	assert.Equal(t, "sqlite:///tmp/x.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", d.MigrateURL())
}
