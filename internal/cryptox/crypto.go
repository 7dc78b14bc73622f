// Package cryptox holds the cryptographic primitives of the enrollment
// protocol: the one-time pad, raw RSA encryption under the provisioning
// service's public key, and the XOR mask that protects the shared secret.
package cryptox

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/shared"
)

// PadSize is the length of the one-time pad and of the shared secret.
const PadSize = 20

// padBlockSize is how many random bytes feed each SHA-1 round of the pad.
const padBlockSize = 128

// OneTimePad returns length bytes built by hashing 128-byte blocks read from r
// with SHA-1 and concatenating the digests.
//
// r must be a CSPRNG in production (crypto/rand.Reader); a predictable source
// exposes the secret to anyone who can observe the response.
func OneTimePad(r io.Reader, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative pad length %d", common.ErrInvalidPayload, length)
	}

	pad := make([]byte, 0, length+sha1.Size)
	for len(pad) < length {
		block, err := shared.ReadRandom(r, padBlockSize)
		if err != nil {
			return nil, err
		}
		sum := sha1.Sum(block)
		pad = append(pad, sum[:]...)
		shared.WipeByteArray(block)
	}

	return pad[:length], nil
}

// XOR returns a ^ b. Both inputs must be PadSize bytes; neither is modified.
//
// Applied to an encrypted secret and the pad generated for the same attempt it
// recovers the plaintext secret. There is no checksum: a wrong pad silently
// yields a wrong secret.
func XOR(a, b []byte) ([]byte, error) {
	if len(a) != PadSize || len(b) != PadSize {
		return nil, fmt.Errorf("%w: xor needs %d-byte inputs, got %d and %d",
			common.ErrInvalidPayload, PadSize, len(a), len(b))
	}

	out := make([]byte, PadSize)
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}
