package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-r", "EU", "-country", "FR", "-n", "main", "-base-url", "http://localhost:9000",
				"-t", "5", "-i", "10", "-log-level", "debug", "-log-format", "json", "-log-driver", "zap", "-json", "-once"},
			expected: &Config{Region: "EU", Country: "FR", Name: "main", BaseURL: "http://localhost:9000",
				HTTPTimeout: 5 * time.Second, CodeInterval: 10 * time.Second,
				LogLevel: "debug", LogFormat: "json", LogDriver: "zap", JSON: true, Once: true},
		},
		{
			name:     "unrelated flags are ignored",
			args:     []string{"cmd", "-c", "x.json", "-r", "KR", "-test.v"},
			expected: &Config{Region: "KR"},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestParseFlags_KeepsSubSecondDurationsWhenUnset(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-r", "EU"}

	cfg := &Config{HTTPTimeout: 1500 * time.Millisecond, CodeInterval: 250 * time.Millisecond}
	parseFlags(cfg)

	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.CodeInterval)
}
