package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, one-way bcrypt hash from the given plaintext
// password using the default cost.
//
// The returned hash embeds its own random salt, so hashing the same password
// twice yields different values. Verification must go through CheckPassword;
// the hash cannot be reversed.
//
// Returns an error if the password is empty or exceeds bcrypt's 72-byte input
// limit.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password cannot be hashed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the given bcrypt hash.
// Comparison is done by re-hashing with the salt embedded in hash; the stored
// hash is never decoded back into a password.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
