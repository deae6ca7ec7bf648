// Package security provides password hashing primitives.
package security

import "github.com/matthewhartstonge/argon2"

// HashPassword derives an argon2id hash of the password with a fresh random
// salt. The returned string is self-describing and safe to persist.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the password matches the encoded hash. The
// comparison is constant-time.
func VerifyPassword(password, encoded string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encoded))
}
