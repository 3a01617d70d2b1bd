package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[store]
driver = "memory"
lock = "local"

[store.retry]
max_attempts = 5

[mail]
username = "reservas@example.com"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, LockLocal, cfg.Store.Lock)
	assert.Equal(t, 5, cfg.Store.Retry.MaxAttempts)
	assert.Equal(t, 1000, cfg.Store.Retry.BaseDelayMs)
	assert.Equal(t, 60, cfg.Store.CacheTTL)
	assert.Equal(t, "proveedor_reservas", cfg.Store.ReservationsSheet)
	assert.Equal(t, "reservas@example.com", cfg.Mail.From)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[mail]
host = "smtp.file.example"
port = 25
`)
	t.Setenv("EMAIL_HOST", "smtp.env.example")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_NAME", "booking")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "smtp.env.example", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Contains(t, cfg.Database.DSN(), "dbname=booking")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, StoreDriverXLSX, cfg.Store.Driver)
	assert.Equal(t, LockNone, cfg.Store.Lock)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[store]
driver = "sheets"
lock = "zookeeper"
`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("EMAIL_PORT", "smtp")
	_, err = Load(writeConfig(t, ""))
	require.ErrorIs(t, err, ErrInvalidConfig)
}
