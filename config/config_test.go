package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("ExpandsEnvAndAppliesDefaults", func(t *testing.T) {
		t.Setenv("PAWFECT_JWT", "s3cret")
		path := writeConfig(t, `
app:
  name: pawfect
database:
  driver: sqlite
auth:
  jwt_secret: ${PAWFECT_JWT}
booking:
  closed_weekdays: ["sunday", "Monday"]
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.Equal(t, "pawfect", cfg.App.Name)
		assert.Equal(t, 8002, cfg.Server.Port)
		assert.Equal(t, 20.00, cfg.Booking.DepositAmount)
		assert.Equal(t, 60*time.Second, cfg.Scheduler.TempSweepInterval)
		assert.Equal(t, 100, cfg.Vouchers.RedeemCost)
		assert.Len(t, cfg.Booking.Slots, 9)
		assert.True(t, cfg.IsClosed(time.Sunday))
		assert.True(t, cfg.IsClosed(time.Monday))
		assert.False(t, cfg.IsClosed(time.Tuesday))
	})

	t.Run("MissingSecret", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: sqlite\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt_secret")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		path := writeConfig(t, "database:\n  driver: mysql\nauth:\n  jwt_secret: x\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("BadWeekday", func(t *testing.T) {
		path := writeConfig(t, "auth:\n  jwt_secret: x\nbooking:\n  closed_weekdays: [Funday]\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday(" saturday ")
	assert.True(t, ok)
	assert.Equal(t, time.Saturday, d)

	_, ok = ParseWeekday("")
	assert.False(t, ok)
}
