package cryptox

import (
	"crypto/rsa"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/bnet-enroll/internal/common"
)

// Provisioning service public key. These are protocol constants and must
// match the server byte for byte.
const (
	enrollModulusHex = "955e4bd989f3917d2f15544a7e0504eb9d7bb66b6f8a2fe470e453c779200e5e" +
		"3ad2e43a02d06c4adbd8d328f1a426b83658e88bfd949b2af4eaf30054673a14" +
		"19a250fa4cc1278d12855b5b25818d162c6e6ee2ab4a350d401d78f6ddb99711" +
		"e72626b48bd8b5b0b7f3acf9ea3c9e0005fee59e19136cdb7c83f2ab8b0a2a99"

	enrollExponentHex = "0101"
)

// Encryptor performs textbook RSA (c = m^e mod n, no padding) under a fixed
// public key, which is what the enrollment endpoint expects.
type Encryptor struct {
	pub  *rsa.PublicKey
	size int
}

// NewEncryptor wraps pub. The key must have a positive modulus and an
// exponent greater than 1.
func NewEncryptor(pub *rsa.PublicKey) (*Encryptor, error) {
	if pub == nil || pub.N == nil || pub.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: missing modulus", common.ErrEncryptionSetup)
	}
	if pub.E < 2 {
		return nil, fmt.Errorf("%w: exponent %d", common.ErrEncryptionSetup, pub.E)
	}
	return &Encryptor{pub: pub, size: (pub.N.BitLen() + 7) / 8}, nil
}

// DefaultEncryptor returns an Encryptor for the embedded provisioning key.
func DefaultEncryptor() (*Encryptor, error) {
	pub, err := parsePublicKey(enrollModulusHex, enrollExponentHex)
	if err != nil {
		return nil, err
	}
	return NewEncryptor(pub)
}

func parsePublicKey(modulusHex, exponentHex string) (*rsa.PublicKey, error) {
	n, ok := new(big.Int).SetString(modulusHex, 16)
	if !ok {
		return nil, fmt.Errorf("%w: bad modulus literal", common.ErrEncryptionSetup)
	}
	e, ok := new(big.Int).SetString(exponentHex, 16)
	if !ok || !e.IsInt64() {
		return nil, fmt.Errorf("%w: bad exponent literal", common.ErrEncryptionSetup)
	}
	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

// Size returns the ciphertext length in bytes (the modulus byte length).
func (e *Encryptor) Size() int {
	return e.size
}

// Encrypt interprets payload as a big-endian integer m and returns m^e mod n,
// left-padded with zeros to Size bytes. m must be smaller than the modulus.
func (e *Encryptor) Encrypt(payload []byte) ([]byte, error) {
	m := new(big.Int).SetBytes(payload)
	if m.Cmp(e.pub.N) >= 0 {
		return nil, fmt.Errorf("%w: message too long for %d-byte key", common.ErrInvalidPayload, e.size)
	}

	c := new(big.Int).Exp(m, big.NewInt(int64(e.pub.E)), e.pub.N)

	out := make([]byte, e.size)
	return c.FillBytes(out), nil
}
