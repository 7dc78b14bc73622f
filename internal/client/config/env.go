package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvFile         = "BNET_ENV_FILE"
	EnvRegion       = "BNET_REGION"
	EnvCountry      = "BNET_COUNTRY"
	EnvName         = "BNET_NAME"
	EnvBaseURL      = "BNET_BASE_URL"
	EnvHTTPTimeout  = "BNET_HTTP_TIMEOUT"
	EnvCodeInterval = "BNET_CODE_INTERVAL"
	EnvLogLevel     = "BNET_LOG_LEVEL"
	EnvLogFormat    = "BNET_LOG_FORMAT"
	EnvLogDriver    = "BNET_LOG_DRIVER"
	EnvJSON         = "BNET_JSON"

	defaultEnvFile = ".env"
)

// parseEnv overlays Config with BNET_* variables.
//
// Values come from a dotenv file (BNET_ENV_FILE, default ".env", silently
// skipped when missing) and the process environment, the latter winning.
// Durations use time.ParseDuration syntax ("15s"); unparsable values are
// ignored and the current value is kept.
func parseEnv(cfg *Config) {
	vars := readDotenv()

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return strings.TrimSpace(v), true
		}
		v, ok := vars[key]
		return strings.TrimSpace(v), ok
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	str(EnvRegion, &cfg.Region)
	str(EnvCountry, &cfg.Country)
	str(EnvName, &cfg.Name)
	str(EnvBaseURL, &cfg.BaseURL)
	dur(EnvHTTPTimeout, &cfg.HTTPTimeout)
	dur(EnvCodeInterval, &cfg.CodeInterval)
	str(EnvLogLevel, &cfg.LogLevel)
	str(EnvLogFormat, &cfg.LogFormat)
	str(EnvLogDriver, &cfg.LogDriver)

	if v, ok := lookup(EnvJSON); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.JSON = b
		}
	}
}

func readDotenv() map[string]string {
	path := defaultEnvFile
	if v := strings.TrimSpace(os.Getenv(EnvFile)); v != "" {
		path = v
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil
	}
	return vars
}
