package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := envLookup
	t.Cleanup(func() { envLookup = orig })
	envLookup = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func Test_parseEnv(t *testing.T) {
	t.Run("original variable names", func(t *testing.T) {
		stubEnv(t, map[string]string{
			"PORT":       "5001",
			"MONGO_URI":  "mongodb://mongo:27017",
			"JWT_SECRET": "jwt",
			"LOG_LEVEL":  "warn",
		})
		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, ":5001", cfg.HTTPAddr)
		assert.Equal(t, "mongodb://mongo:27017", cfg.DatabaseDSN)
		assert.Equal(t, "jwt", cfg.SecretKey)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("DATABASE_DSN wins over MONGO_URI", func(t *testing.T) {
		stubEnv(t, map[string]string{
			"MONGO_URI":    "mongodb://mongo:27017",
			"DATABASE_DSN": "postgres://pg/tasks",
		})
		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, "postgres://pg/tasks", cfg.DatabaseDSN)
	})

	t.Run("port with colon kept", func(t *testing.T) {
		stubEnv(t, map[string]string{"PORT": ":7000"})
		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, ":7000", cfg.HTTPAddr)
	})

	t.Run("empty values ignored", func(t *testing.T) {
		stubEnv(t, map[string]string{"JWT_SECRET": ""})
		cfg := &Config{SecretKey: "keep"}
		parseEnv(cfg)
		assert.Equal(t, "keep", cfg.SecretKey)
	})
}
