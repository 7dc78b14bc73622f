package enroll

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
	"github.com/dmitrijs2005/bnet-enroll/internal/cryptox"
)

const (
	// ModelSize is the length of the device model string.
	ModelSize = 16

	// CountrySize is the length of the country code.
	CountrySize = 2

	// PayloadSize is the length of an unencrypted enrollment request.
	PayloadSize = cryptox.PadSize + CountrySize + ModelSize
)

// modelChars is the alphabet device models are drawn from. "0" appears twice.
const modelChars = " ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz01234567890"

// GenerateRandomModel returns a ModelSize-character model string, each
// character drawn uniformly, with replacement, from the model alphabet.
func GenerateRandomModel(r io.Reader) (string, error) {
	limit := big.NewInt(int64(len(modelChars)))

	model := make([]byte, ModelSize)
	for i := range model {
		n, err := rand.Int(r, limit)
		if err != nil {
			return "", fmt.Errorf("random model: %w", err)
		}
		model[i] = modelChars[n.Int64()]
	}
	return string(model), nil
}

// BuildPayload concatenates pad, country and model into the 38-byte
// enrollment request.
func BuildPayload(pad []byte, country, model string) ([]byte, error) {
	if len(pad) != cryptox.PadSize {
		return nil, fmt.Errorf("%w: pad must be %d bytes, got %d", common.ErrInvalidPayload, cryptox.PadSize, len(pad))
	}
	if len(country) != CountrySize || !isASCII(country) {
		return nil, fmt.Errorf("%w: country code must be %d ASCII characters, got %q", common.ErrInvalidPayload, CountrySize, country)
	}
	if len(model) != ModelSize || !isASCII(model) {
		return nil, fmt.Errorf("%w: model must be %d ASCII characters, got %q", common.ErrInvalidPayload, ModelSize, model)
	}

	payload := make([]byte, 0, PayloadSize)
	payload = append(payload, pad...)
	payload = append(payload, country...)
	payload = append(payload, model...)
	return payload, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
