package digest

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const (
	saltSize  = 16
	tokenSize = 32
)

// Hash returns the lowercase hex SHA-256 digest of password || salt.
// It is a pure function: identical inputs always produce identical output.
// salt is the hex-encoded per-user salt exactly as stored on the record.
func Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest for password and salt and compares it to
// expected in constant time.
func Verify(password, salt, expected string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}

// NewSalt returns 16 bytes from the platform CSPRNG, hex-encoded.
func NewSalt() (string, error) {
	return randomHex(saltSize)
}

// NewToken returns 32 bytes from the platform CSPRNG, hex-encoded. It is
// used for both session tokens and reset tokens; the token space is large
// enough that collisions are not separately checked.
func NewToken() (string, error) {
	return randomHex(tokenSize)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
