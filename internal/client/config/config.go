package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/client/client"
	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/logging"
)

// Config holds runtime settings for the bnet-enroll CLI.
//
// Fields:
//   - Region: provisioning region (US, EU, KR, CN).
//   - Country: two-letter country code sent in the enrollment request.
//   - Name: account label used in the provisioning URI.
//   - BaseURL: overrides the region table when non-empty.
//   - HTTPTimeout: timeout for the enrollment round trip.
//   - CodeInterval: how often the current code is shown.
//   - LogLevel / LogFormat / LogDriver: logging setup (see logging.New).
//   - JSON: print the enrollment summary as JSON.
//   - Once: print a single code and exit instead of looping.
type Config struct {
	Region       string
	Country      string
	Name         string
	BaseURL      string
	HTTPTimeout  time.Duration
	CodeInterval time.Duration
	LogLevel     string
	LogFormat    string
	LogDriver    string
	JSON         bool
	Once         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Region = "US"
	c.Country = "US"
	c.Name = ""
	c.BaseURL = ""
	c.HTTPTimeout = 15 * time.Second
	c.CodeInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
	c.LogDriver = logging.DriverSlog
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), a JSON or YAML file (if
// present) and command-line flags (if present). Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks that the configuration is coherent.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		if _, ok := client.RegionBaseURL(c.Region); !ok {
			return fmt.Errorf("%w: unknown region %q (want one of %v)", common.ErrInvalidConfig, c.Region, client.Regions())
		}
	}
	if !isCountryCode(c.Country) {
		return fmt.Errorf("%w: country must be two ASCII letters, got %q", common.ErrInvalidConfig, c.Country)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: http timeout must be > 0", common.ErrInvalidConfig)
	}
	if c.CodeInterval <= 0 {
		return fmt.Errorf("%w: code interval must be > 0", common.ErrInvalidConfig)
	}
	switch c.LogDriver {
	case logging.DriverSlog, logging.DriverZap:
	default:
		return fmt.Errorf("%w: unknown log driver %q", common.ErrInvalidConfig, c.LogDriver)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
