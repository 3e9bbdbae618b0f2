package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSharedSecret(t *testing.T) {
	t.Run("reads and trims the secret", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "password.txt")
		require.NoError(t, os.WriteFile(path, []byte("hunter2\n"), 0600))

		secret, err := LoadSharedSecret(path)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", secret)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadSharedSecret(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("empty file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "password.txt")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0600))

		_, err := LoadSharedSecret(path)
		assert.Error(t, err)
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "expense_user",
		Password: "expense_password",
		Name:     "expense_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=expense_user password=expense_password dbname=expense_db sslmode=disable",
		cfg.DSN())
	assert.False(t, cfg.IsPostgres())

	cfg.Driver = "postgres"
	assert.True(t, cfg.IsPostgres())
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING_KEY", "value")
	t.Setenv("TEST_INT_KEY", "42")
	t.Setenv("TEST_DURATION_KEY", "30s")
	t.Setenv("TEST_BAD_INT_KEY", "not-a-number")

	assert.Equal(t, "value", getEnv("TEST_STRING_KEY", "default"))
	assert.Equal(t, "default", getEnv("TEST_MISSING_KEY", "default"))
	assert.Equal(t, 42, getIntEnv("TEST_INT_KEY", 1))
	assert.Equal(t, 1, getIntEnv("TEST_BAD_INT_KEY", 1))
	assert.Equal(t, "30s", getDurationEnv("TEST_DURATION_KEY", 0).String())
}
