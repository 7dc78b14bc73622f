package shared

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRandom_Length(t *testing.T) {
	const n = 128
	b, err := ReadRandom(rand.Reader, n)
	require.NoError(t, err)
	assert.Len(t, b, n)
}

func TestReadRandom_ZeroSize(t *testing.T) {
	b, err := ReadRandom(rand.Reader, 0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestReadRandom_ShortReader(t *testing.T) {
	_, err := ReadRandom(bytes.NewReader([]byte{1, 2, 3}), 4)
	require.Error(t, err)
}

func TestReadRandom_Deterministic(t *testing.T) {
	src := bytes.Repeat([]byte{0xAB}, 8)
	b, err := ReadRandom(bytes.NewReader(src), 8)
	require.NoError(t, err)
	assert.Equal(t, src, b)
}

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
