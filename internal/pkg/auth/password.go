package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/devang/profmatch/internal/pkg/apperrors"
)

// BcryptCost matches the work factor the accounts were originally hashed with.
const BcryptCost = 10

// MinPasswordLength is the minimum accepted plaintext length.
const MinPasswordLength = 6

// ValidatePassword rejects passwords shorter than the minimum length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}
	return nil
}

// HashPassword derives a salted one-way hash from the plaintext.
// The plaintext is never persisted.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a plaintext against a stored hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
