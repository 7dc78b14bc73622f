package codes

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	goldenSerial = "US-1306-2525-4376"
	goldenSecret = []byte{
		0x7B, 0x0B, 0xFA, 0x82, 0x30, 0xE5, 0x44, 0x24, 0xAB, 0x51,
		0x77, 0x7D, 0xAD, 0xBF, 0xD5, 0x37, 0x41, 0x43, 0xE3, 0xB0,
	}
)

func randomSecret(t *testing.T) []byte {
	t.Helper()
	b := make([]byte, 20)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestSecretCode_Golden(t *testing.T) {
	assert.Equal(t, "PMF7VARQ4VCCJK2RO5623P6VG5AUHY5Q", SecretCode(goldenSecret))
}

func TestSecretCode_RoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		secret := randomSecret(t)
		code := SecretCode(secret)

		require.Len(t, code, 32)
		require.NotContains(t, code, "=")

		decoded, err := base32.StdEncoding.DecodeString(code)
		require.NoError(t, err)
		require.Equal(t, secret, decoded)
	}
}

func TestSecretCode_Padding(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
		want   string
	}{
		{name: "empty", secret: []byte{}, want: ""},
		{name: "one byte", secret: []byte("f"), want: "MY======"},
		{name: "five bytes", secret: []byte("fooba"), want: "MZXW6YTB"},
		{name: "six bytes", secret: []byte("foobar"), want: "MZXW6YTBOI======"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SecretCode(tt.secret))
		})
	}
}

func TestRestoreCode_Golden(t *testing.T) {
	assert.Equal(t, "CR24KPKF51", RestoreCode(goldenSerial, goldenSecret))
}

func TestRestoreCode_DashesIgnored(t *testing.T) {
	want := RestoreCode(goldenSerial, goldenSecret)
	assert.Equal(t, want, RestoreCode("US130625254376", goldenSecret))
	assert.Equal(t, want, RestoreCode("-US-1306--2525-4376-", goldenSecret))
}

func TestRestoreCode_Deterministic(t *testing.T) {
	secret := randomSecret(t)
	a := RestoreCode("EU-1111-2222-3333", secret)
	b := RestoreCode("EU-1111-2222-3333", secret)
	assert.Equal(t, a, b)
	assert.Len(t, a, RestoreCodeLength)
	assert.True(t, ValidRestoreCode(a), "derived code %q must be valid", a)
}

func TestRestoreChar_FullRange(t *testing.T) {
	want := "0123456789ABCDEFGHJKMNPQRTUVWXYZ"
	for i := 0; i < 32; i++ {
		got := restoreChar(byte(i))
		assert.Equal(t, want[i], got, "index %d", i)
		// high bits are ignored
		assert.Equal(t, got, restoreChar(byte(i)|0xE0))
	}
}

func TestValidRestoreCode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"CR24KPKF51", true},
		{"0000000000", true},
		{"CR24KPKF5", false},
		{"CR24KPKF511", false},
		{"CR24KPKFI1", false},
		{"CR24KPKFS1", false},
		{"cr24kpkf51", false},
		{"CR24-PKF51", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRestoreCode(tt.in), tt.in)
	}
}

func TestProvisioningURI(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := SecretCode(randomSecret(t))
		uri := ProvisioningURI("me", code)

		assert.True(t, strings.HasPrefix(uri, "otpauth://totp/me?"))
		assert.Contains(t, uri, "secret="+code)
		assert.True(t, strings.HasSuffix(uri, "&issuer=Battle.net&digits=8"))
	}
}

func TestProvisioningURI_DefaultName(t *testing.T) {
	uri := ProvisioningURI("", "ABC")
	assert.Equal(t, "otpauth://totp/bnet-account?secret=ABC&issuer=Battle.net&digits=8", uri)
}
