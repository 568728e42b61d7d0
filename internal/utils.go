package internal

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
)

// RandomBytes generates cryptographically secure random bytes
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// IsHex reports whether s is non-empty and made only of [A-Fa-f0-9].
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// UpperHex renders b as upper-case hex, two characters per byte.
func UpperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
