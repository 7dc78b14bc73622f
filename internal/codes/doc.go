// Package codes derives the user-facing codes of an enrolled authenticator
// from its serial and shared secret.
//
//   - SecretCode      : base32 form of the secret, for manual entry
//   - RestoreCode     : 10-character code used to re-link an enrollment
//   - ProvisioningURI : otpauth:// URI understood by TOTP apps
//
// All functions are pure; identical inputs always yield identical output.
package codes
