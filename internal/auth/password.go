// ABOUTME: Password hashing and the single shared login credential.
// ABOUTME: Uses bcrypt so every stored hash carries its own random salt.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for any username/password mismatch.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotConfigured is returned when no login credential has been set up.
	ErrNotConfigured = errors.New("login credential not configured")
)

// HashPassword hashes password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares password against a bcrypt hash.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return err
}

// Credential is the one configured login.
type Credential struct {
	Username     string
	PasswordHash string
}

// Verify checks a submitted username and password.
func (c Credential) Verify(username, password string) error {
	if c.Username == "" || c.PasswordHash == "" {
		return ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	pwErr := CheckPassword(password, c.PasswordHash)
	if !userOK {
		return ErrInvalidCredentials
	}
	if pwErr != nil {
		if errors.Is(pwErr, ErrInvalidCredentials) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("verify password: %w", pwErr)
	}
	return nil
}
