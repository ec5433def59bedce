package services

import "crypto/subtle"

// CredentialVerifier compares a stored credential with a supplied one.
// The rider store keeps credentials as opaque strings, so a hashing scheme
// can be substituted here without touching the login workflow.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares credentials byte for byte. It matches the
// behavior of the upstream system and is the default wiring; replace it with
// a hashing verifier before exposing logins anywhere that matters.
type PlaintextVerifier struct{}

// NewPlaintextVerifier creates the default plaintext credential verifier.
func NewPlaintextVerifier() PlaintextVerifier {
	return PlaintextVerifier{}
}

// Verify reports whether supplied equals stored, in constant time.
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
