package util

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	SchemeBcrypt = "bcrypt"
	SchemePBKDF2 = "pbkdf2"

	pbkdf2Iterations = 100_000
)

// PasswordHasher hashes new passwords with the configured scheme.
// Stored hashes of either scheme are accepted by Check.
type PasswordHasher struct {
	Scheme     string
	BcryptCost int
}

// NewPasswordHasher falls back to bcrypt for an unknown scheme and to the
// bcrypt default cost for an out-of-range cost.
func NewPasswordHasher(scheme string, cost int) PasswordHasher {
	scheme = strings.ToLower(strings.TrimSpace(scheme))
	if scheme != SchemePBKDF2 {
		scheme = SchemeBcrypt
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{Scheme: scheme, BcryptCost: cost}
}

func (h PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	if h.Scheme == SchemePBKDF2 {
		return hashPBKDF2(password)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (h PasswordHasher) Check(password, stored string) bool {
	return CheckPassword(password, stored)
}

// hashPBKDF2 returns "salt$hash" using PBKDF2+SHA256.
func hashPBKDF2(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, 32, sha256.New)
	saltStr := base64.RawStdEncoding.EncodeToString(salt)
	hashStr := base64.RawStdEncoding.EncodeToString(hash)

	return saltStr + "$" + hashStr, nil
}

// CheckPassword verifies a plain password against a bcrypt or PBKDF2 hash.
func CheckPassword(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(expectedHash) == 0 {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(expectedHash), sha256.New)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}

// RandomString returns a URL-safe random string of length n (secrets, keys).
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)[:n], nil
}
