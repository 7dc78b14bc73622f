// Package cli runs the bnet-enroll command: it enrolls one authenticator,
// prints the device summary and then keeps printing the current code until
// the context is cancelled.
//
// NewApp wires configuration, logging, the HTTP transport and the enroller.
// App.Run blocks until the code loop ends (Once, or ctx cancellation).
package cli
