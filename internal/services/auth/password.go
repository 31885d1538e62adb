package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordChecker compares a submitted password with the configured admin
// credential. A bcrypt hash takes precedence over a plain password.
type PasswordChecker struct {
	hash  []byte
	plain []byte
}

func NewPasswordChecker(hash, plain string) *PasswordChecker {
	c := &PasswordChecker{}
	if hash != "" {
		c.hash = []byte(hash)
	} else {
		c.plain = []byte(plain)
	}
	return c
}

// Hashed reports whether a bcrypt hash is configured.
func (c *PasswordChecker) Hashed() bool {
	return c.hash != nil
}

func (c *PasswordChecker) Check(password string) bool {
	if c.hash != nil {
		return bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	}
	if len(c.plain) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(c.plain, []byte(password)) == 1
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password []byte) (string, error) {
	h, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
