// Package service defines the ports the use cases depend on. Implementations live under infra.
package service

// PasswordHasher hashes account secrets. Reconciliation stores the hash of a random secret on
// every User it creates; the partner later signs in through OTP, never with that secret.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
