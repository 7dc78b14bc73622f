package logging

import (
	"fmt"
	"io"
	"strings"
)

const (
	DriverSlog = "slog"
	DriverZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// New builds a Logger writing to w.
//
// driver selects the backend ("slog" or "zap"), level is one of debug, info,
// warn, error (unknown values fall back to info) and format is "text" or
// "json".
func New(driver, level, format string, w io.Writer) (Logger, error) {
	switch strings.ToLower(driver) {
	case "", DriverSlog:
		return newSlog(level, format, w), nil

	case DriverZap:
		return newZap(level, format, w), nil

	default:
		return nil, fmt.Errorf("unknown log driver %q", driver)
	}
}
