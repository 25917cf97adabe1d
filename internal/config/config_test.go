package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("APP_PORT", "9999")
		t.Setenv("APP_ENV", "test")
		t.Setenv("SESSION_SECRET", "sekrit")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Postgres.Host)
		assert.Equal(t, "testuser", cfg.Postgres.User)
		assert.Equal(t, "testpass", cfg.Postgres.Password)
		assert.Equal(t, "testdb", cfg.Postgres.DBName)
		assert.Equal(t, "5433", cfg.Postgres.Port)
		assert.Equal(t, "9999", cfg.HTTPServer.Port)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "sekrit", cfg.Session.Secret)
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 15*time.Second, cfg.HTTPServer.TimeoutRead)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	})
}

func TestPostgresConfigDSN(t *testing.T) {
	pc := PostgresConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "u",
		Password: "p",
		DBName:   "d",
	}

	dsn := pc.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=d")
	assert.Contains(t, dsn, "sslmode=disable")
}
