package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when the configured cost is zero.
const DefaultCost = 10

// CombineSecret mixes the password with the user's email (pepper) and
// employee number (deterministic salt) before hashing. The stored hash is
// never derived from the password alone.
func CombineSecret(password, email, employeeNumber string) string {
	return password + email + employeeNumber
}

// HashSecret hashes a combined secret with bcrypt at the given cost.
func HashSecret(secret string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// VerifySecret compares a combined secret against a stored bcrypt hash.
// The comparison is constant-time. A mismatch returns (false, nil); only a
// malformed hash produces an error.
func VerifySecret(secret, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(secret))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify secret: %w", err)
}
