package codes

import (
	"crypto/sha1"
	"encoding/base32"
	"strings"
)

// RestoreCodeLength is the number of characters in a restore code.
const RestoreCodeLength = 10

// DefaultAccountName is used in the provisioning URI when no name is given.
const DefaultAccountName = "bnet-account"

const issuer = "Battle.net"

// SecretCode returns the RFC 4648 base32 encoding of secret, padded with '='
// to a multiple of 8 characters. A 20-byte secret encodes to exactly 32
// characters with no padding.
func SecretCode(secret []byte) string {
	return base32.StdEncoding.EncodeToString(secret)
}

// RestoreCode derives the restore code for an authenticator.
//
// The serial with all '-' removed is concatenated with the raw secret, hashed
// with SHA-1, and the last 10 digest bytes are mapped to the restore alphabet.
func RestoreCode(serial string, secret []byte) string {
	data := make([]byte, 0, len(serial)+len(secret))
	data = append(data, strings.ReplaceAll(serial, "-", "")...)
	data = append(data, secret...)

	digest := sha1.Sum(data)
	tail := digest[len(digest)-RestoreCodeLength:]

	out := make([]byte, RestoreCodeLength)
	for i, b := range tail {
		out[i] = restoreChar(b)
	}
	return string(out)
}

// restoreChar maps the low 5 bits of b onto 0-9 and the 22 letters left after
// dropping I, L, O and S.
func restoreChar(b byte) byte {
	index := b & 0x1f
	if index <= 9 {
		return '0' + index
	}

	code := index + 'A' - 10
	if code >= 'I' {
		code++
	}
	if code >= 'L' {
		code++
	}
	if code >= 'O' {
		code++
	}
	if code >= 'S' {
		code++
	}
	return code
}

// ValidRestoreCode reports whether s could have been produced by RestoreCode.
func ValidRestoreCode(s string) bool {
	if len(s) != RestoreCodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'Z' && c != 'I' && c != 'L' && c != 'O' && c != 'S':
		default:
			return false
		}
	}
	return true
}

// ProvisioningURI builds the otpauth:// URI for an 8-digit Battle.net TOTP.
// An empty name falls back to DefaultAccountName.
func ProvisioningURI(name, secretCode string) string {
	if name == "" {
		name = DefaultAccountName
	}
	return "otpauth://totp/" + name + "?secret=" + secretCode + "&issuer=" + issuer + "&digits=8"
}
