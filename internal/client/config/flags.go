package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/flagx"
)

var (
	valueFlags = []string{"-r", "-country", "-n", "-base-url", "-t", "-i", "-log-level", "-log-format", "-log-driver"}
	boolFlags  = []string{"-json", "-once"}
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-r string           provisioning region: US, EU, KR, CN
//	-country string     two-letter country code sent to the server
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
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c/-config is left to parseFile.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], valueFlags, boolFlags...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Region, "r", cfg.Region, "provisioning region (US, EU, KR, CN)")
	fs.StringVar(&cfg.Country, "country", cfg.Country, "two-letter country code")
	fs.StringVar(&cfg.Name, "n", cfg.Name, "account name for the provisioning URI")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "override the provisioning base URL")
	timeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")
	interval := fs.Int("i", int(cfg.CodeInterval.Seconds()), "code refresh interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.LogDriver, "log-driver", cfg.LogDriver, "log backend: slog or zap")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the enrollment summary as JSON")
	fs.BoolVar(&cfg.Once, "once", cfg.Once, "print one code and exit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only explicit flags override, so sub-second values from env or file survive.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.HTTPTimeout = time.Duration(*timeout) * time.Second
		case "i":
			cfg.CodeInterval = time.Duration(*interval) * time.Second
		}
	})
}
