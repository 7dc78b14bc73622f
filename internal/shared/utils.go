// Package shared provides helpers for reading random bytes and wiping
// sensitive buffers.
package shared

import (
	"fmt"
	"io"
)

// ReadRandom reads exactly size bytes from r.
//
// r is expected to be a CSPRNG such as crypto/rand.Reader; tests may pass a
// deterministic reader. A short read is reported as an error.
func ReadRandom(r io.Reader, size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("read random: %w", err)
	}
	return b, nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is used to drop one-time pads from memory once the secret has been
// recovered.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
