package enroll

import "github.com/dmitrijs2005/bnet-enroll/internal/cryptox"

// RecoverSecret unmasks the encrypted secret with the pad generated for the
// same attempt.
func RecoverSecret(encryptedSecret, pad []byte) ([]byte, error) {
	return cryptox.XOR(encryptedSecret, pad)
}
