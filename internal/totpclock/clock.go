// Package totpclock produces Battle.net authenticator codes: 8-digit SHA-1
// TOTP on a 30-second step, evaluated on the server-corrected clock.
package totpclock

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// Period is the TOTP time step.
	Period = 30 * time.Second

	// Digits is the code length.
	Digits = 8
)

var validateOpts = totp.ValidateOpts{
	Period:    uint(Period / time.Second),
	Digits:    otp.DigitsEight,
	Algorithm: otp.AlgorithmSHA1,
}

// Clock generates codes for one secret.
type Clock struct {
	secretCode string
	offset     time.Duration
	now        func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces time.Now as the local clock.
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// New returns a Clock for the base32 secretCode. offset is added to the local
// clock before each code is computed.
func New(secretCode string, offset time.Duration, opts ...Option) *Clock {
	c := &Clock{secretCode: secretCode, offset: offset, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the server-corrected time.
func (c *Clock) Now() time.Time {
	return c.now().Add(c.offset)
}

// Code returns the code valid at Now.
func (c *Clock) Code() (string, error) {
	return c.CodeAt(c.Now())
}

// CodeAt returns the code for an already-corrected time t.
func (c *Clock) CodeAt(t time.Time) (string, error) {
	return totp.GenerateCodeCustom(c.secretCode, t, validateOpts)
}

// Remaining returns how long the current code stays valid.
func (c *Clock) Remaining() time.Duration {
	now := c.Now()
	return now.Truncate(Period).Add(Period).Sub(now)
}
