package common

import "errors"

// Sentinel errors shared by the enrollment pipeline. Callers should use
// errors.Is to match these values; producers wrap them with stage context.
var (
	// Transport-level errors (connection, timeout, non-success status).
	ErrTransport = errors.New("transport error")

	// Protocol errors (short or insane enrollment response).
	ErrMalformedResponse = errors.New("malformed enrollment response")

	// Embedded key constants failed to parse. Programmer error only.
	ErrEncryptionSetup = errors.New("encryption setup error")

	// Request assembly / secret recovery received wrongly sized input.
	ErrInvalidPayload = errors.New("invalid payload")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid config")
)
