package client

import "context"

// Transport sends an encrypted enrollment request and returns the raw
// response body. Implementations perform a single round trip.
type Transport interface {
	Send(ctx context.Context, region string, body []byte) ([]byte, error)
}
