package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/scribeapp/scribe/apperror"
)

// HashPassword returns the bcrypt hash of the password. The per-password salt
// is embedded in the resulting hash string.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext candidate against a stored bcrypt hash
// using bcrypt's constant-time comparator. A wrong password returns
// (false, nil); a malformed stored hash is an integrity fault, not a
// verification failure.
func VerifyPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperror.NewIntegrity("stored password hash is malformed", err)
	}
}
