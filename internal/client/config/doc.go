// Package config loads runtime configuration for the bnet-enroll CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: BNET_* variables, from the process environment or a dotenv
//     file (BNET_ENV_FILE, default ".env"); see parseEnv.
//  3. Optional JSON or YAML file (see parseFile) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-r string           provisioning region: US, EU, KR, CN
//	-country string     two-letter country code
//	-n string           account name for the provisioning URI
//	-base-url string    override the region's base URL
//	-t int              HTTP timeout (seconds)
//	-i int              code refresh interval (seconds)
//	-log-level string   debug, info, warn, error
//	-log-format string  text or json
//	-log-driver string  slog or zap
//	-json               print the enrollment summary as JSON
//	-once               print one code and exit
//
// # File schema
//
// Durations are strings such as "15s":
//
//	{
//	  "region": "EU",
//	  "country": "DE",
//	  "http_timeout": "10s",
//	  "code_interval": "30s",
//	  "log_driver": "zap"
//	}
//
// The same keys are used in YAML files (.yaml / .yml).
//
// Primary API
//
//   - type Config                    : runtime settings
//   - func LoadConfig() *Config      : defaults, env, file, then flags
//   - func (*Config) LoadDefaults()  : sets sensible defaults
//   - func (*Config) Validate() error: rejects incoherent settings (common.ErrInvalidConfig)
package config
