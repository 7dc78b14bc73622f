package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogText(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("slog", "info", "text", &buf)
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, l)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "shown", "serial", "US-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "serial=US-1")
}

func TestNew_SlogJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("", "debug", "json", &buf)
	require.NoError(t, err)

	l.Debug(context.Background(), "dbg", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"dbg"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNew_ZapJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("zap", "warn", "json", &buf)
	require.NoError(t, err)
	require.IsType(t, &ZapLogger{}, l)

	ctx := context.Background()
	l.Info(ctx, "hidden")
	l.With("attempt", "a1").Warn(ctx, "careful", "k", "v")
	require.NoError(t, l.(*ZapLogger).Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"careful"`)
	assert.Contains(t, out, `"attempt":"a1"`)
	assert.Contains(t, out, `"k":"v"`)
}

func TestNew_ZapConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("zap", "debug", "text", &buf)
	require.NoError(t, err)

	l.Error(context.Background(), "boom", "stage", "transport")
	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "transport")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New("logrus", "info", "text", &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseLevels_Fallback(t *testing.T) {
	assert.Equal(t, parseSlogLevel("info"), parseSlogLevel("bogus"))
	assert.Equal(t, parseZapLevel("info"), parseZapLevel("bogus"))
	assert.Equal(t, parseZapLevel("warn"), parseZapLevel("WARNING"))
}
