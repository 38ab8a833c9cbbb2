package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashingFailed is returned by [BcryptHasher.Hash] when bcrypt cannot
// produce a hash (for example, a password longer than 72 bytes).
var ErrHashingFailed = errors.New("password hashing failed")

// BcryptHasher hashes and verifies passwords with bcrypt.
// Every Hash call uses a fresh random salt, so equal passwords produce
// different hashes. The zero value is not usable; construct with
// [NewBcryptHasher].
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, clamped to the range bcrypt
// accepts ([bcrypt.MinCost], [bcrypt.MaxCost]).
//
// Example usage:
//
//	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)
//	hash, err := hasher.Hash("secret1")
func NewBcryptHasher(cost int) *BcryptHasher {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	return &BcryptHasher{cost: cost}
}

// Cost returns the bcrypt cost factor used for new hashes.
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt hash of plaintext.
//
// Returns an error wrapping [ErrHashingFailed] if bcrypt rejects the input.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. The comparison is
// constant-time; a malformed hash simply does not match.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
