// Package bcrypthash provides the bcrypt implementation of the password
// hashing port.
package bcrypthash

import (
	"golang.org/x/crypto/bcrypt"

	"parceltrack/internal/core/ports"
)

// bcryptHasher is a concrete implementation of the PasswordHasher port using
// bcrypt.
type bcryptHasher struct{}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a ports.PasswordHasher interface.
func NewBcryptHasher() ports.PasswordHasher {
	return &bcryptHasher{}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
