// Package client contains the transport used to talk to the Battle.net
// mobile-authenticator provisioning service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Transport interface): send the
//     encrypted enrollment request for a region, receive the raw response.
//  2. A concrete HTTP implementation (see HTTPTransport) that resolves the
//     region to a base URL, POSTs an octet-stream body and logs the round
//     trip at debug level.
//  3. The static region table (see RegionBaseURL).
//
// # Error Handling
//
// Every failure of a round trip wraps common.ErrTransport; callers match it
// with errors.Is. There is no retry.
//
// Concurrency & Contexts
//
// HTTPTransport is safe for concurrent use. Send honors ctx cancellation and
// the configured timeout.
package client
