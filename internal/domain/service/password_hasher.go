// Package service declares the domain services implemented by the infrastructure layer.
package service

// PasswordHasher turns credentials into one-way hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash derives a salted, encoded hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches encodedHash. A malformed hash is a mismatch.
	Check(password, encodedHash string) bool
}
