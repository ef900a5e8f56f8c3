// Package service declares the ports usecases need from infrastructure.
package service

// PasswordHasher hashes staff passwords.
//
// Stored passwords that are not hashes yet are compared verbatim once and
// replaced by Hash on the next successful login.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches a stored hash.
	Check(password, hash string) bool
}
