package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("process environment", func(t *testing.T) {
		t.Setenv(EnvFile, "does-not-exist.env")
		t.Setenv(EnvRegion, "EU")
		t.Setenv(EnvHTTPTimeout, "3s")
		t.Setenv(EnvCodeInterval, "not-a-duration")
		t.Setenv(EnvJSON, "true")
		t.Setenv(EnvLogDriver, " zap ")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "EU", cfg.Region)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 30*time.Second, cfg.CodeInterval, "bad duration is ignored")
		assert.True(t, cfg.JSON)
		assert.Equal(t, "zap", cfg.LogDriver)
	})

	t.Run("dotenv file, process env wins", func(t *testing.T) {
		path := writeTemp(t, "test.env", "BNET_REGION=KR\nBNET_COUNTRY=JP\nBNET_NAME=from-file\n")
		t.Setenv(EnvFile, path)
		t.Setenv(EnvCountry, "GB")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "KR", cfg.Region)
		assert.Equal(t, "GB", cfg.Country)
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		t.Setenv(EnvFile, "does-not-exist.env")
		t.Setenv(EnvRegion, "")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "US", cfg.Region)
	})
}
