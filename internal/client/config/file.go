package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for JSON/YAML unmarshalling.
// Durations are strings in time.ParseDuration syntax ("15s"). After parsing,
// non-empty values are copied into the runtime Config.
type FileConfig struct {
	Region       string `json:"region" yaml:"region"`
	Country      string `json:"country" yaml:"country"`
	Name         string `json:"name" yaml:"name"`
	BaseURL      string `json:"base_url" yaml:"base_url"`
	HTTPTimeout  string `json:"http_timeout" yaml:"http_timeout"`
	CodeInterval string `json:"code_interval" yaml:"code_interval"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format"`
	LogDriver    string `json:"log_driver" yaml:"log_driver"`
	JSON         *bool  `json:"json" yaml:"json"`
}

// parseFile overlays Config with values loaded from a config file.
//
// The path comes from the -c or -config flag (flagx.ConfigFileFlag); when
// neither is given, nothing is loaded. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
//
// Panics on read, decode or duration errors (caller should recover if
// desired).
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(fmt.Errorf("config file %s: %w", path, err))
	}

	if err := fc.apply(cfg); err != nil {
		panic(fmt.Errorf("config file %s: %w", path, err))
	}
}

func (fc *FileConfig) apply(cfg *Config) error {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setDur := func(dst *time.Duration, v string) error {
		if v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}

	set(&cfg.Region, fc.Region)
	set(&cfg.Country, fc.Country)
	set(&cfg.Name, fc.Name)
	set(&cfg.BaseURL, fc.BaseURL)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
	set(&cfg.LogDriver, fc.LogDriver)
	if fc.JSON != nil {
		cfg.JSON = *fc.JSON
	}

	if err := setDur(&cfg.HTTPTimeout, fc.HTTPTimeout); err != nil {
		return fmt.Errorf("http_timeout: %w", err)
	}
	if err := setDur(&cfg.CodeInterval, fc.CodeInterval); err != nil {
		return fmt.Errorf("code_interval: %w", err)
	}
	return nil
}
