package enroll

import (
	"bytes"
	"time"

	"github.com/dmitrijs2005/bnet-enroll/internal/codes"
)

// Device is the result of a successful enrollment. The shared secret is only
// reachable through Secret, which returns a copy, so a Device cannot be
// changed through one of its copies. A new enrollment yields a new Device.
type Device struct {
	Serial           string
	TimeOffsetMillis int64
	secret           []byte

	Region     string
	Country    string
	Model      string
	EnrolledAt time.Time
}

// Secret returns a copy of the 20-byte shared secret.
func (d Device) Secret() []byte {
	return bytes.Clone(d.secret)
}

// TimeOffset is the server clock minus the local clock.
func (d Device) TimeOffset() time.Duration {
	return time.Duration(d.TimeOffsetMillis) * time.Millisecond
}

// SecretCode returns the base32 form of the shared secret.
func (d Device) SecretCode() string {
	return codes.SecretCode(d.secret)
}

// RestoreCode returns the code used to restore this authenticator.
func (d Device) RestoreCode() string {
	return codes.RestoreCode(d.Serial, d.secret)
}

// ProvisioningURI returns the otpauth:// URI for name (default "bnet-account").
func (d Device) ProvisioningURI(name string) string {
	return codes.ProvisioningURI(name, d.SecretCode())
}
