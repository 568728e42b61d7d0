// Package toxpk provides the bare 32-byte public key identity shared by
// full Tox addresses and by contacts known only through their key.
package toxpk

import (
	"bytes"
	"encoding/hex"

	"github.com/go-i2p/go-toxid/internal"
	"github.com/samber/oops"
)

const (
	// Size is the length of a public key in bytes.
	Size = 32
	// NumHexChars is the length of a public key rendered as hex.
	NumHexChars = Size * 2
)

// PublicKey is a fixed 32-byte peer identity. Two keys are equal iff their
// bytes are equal, so PublicKey can be compared with == and used as a map key.
type PublicKey [Size]byte

// FromBytes copies a 32-byte buffer into a PublicKey.
func FromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != Size {
		return pk, oops.
			Code("INVALID_PUBLIC_KEY_SIZE").
			In("toxpk").
			With("key_length", len(b)).
			Errorf("public key must be exactly %d bytes", Size)
	}
	copy(pk[:], b)
	return pk, nil
}

// FromHex parses a 64 character hex string. Both upper and lower case are accepted.
func FromHex(s string) (PublicKey, error) {
	var pk PublicKey
	if len(s) != NumHexChars {
		return pk, oops.
			Code("INVALID_PUBLIC_KEY_LENGTH").
			In("toxpk").
			With("hex_length", len(s)).
			Errorf("public key must be exactly %d hex characters", NumHexChars)
	}
	if !internal.IsHex(s) {
		return pk, oops.
			Code("INVALID_PUBLIC_KEY_HEX").
			In("toxpk").
			Errorf("public key contains non-hex characters")
	}
	if _, err := hex.Decode(pk[:], []byte(s)); err != nil {
		return pk, oops.
			Code("INVALID_PUBLIC_KEY_HEX").
			In("toxpk").
			Wrapf(err, "failed to decode public key")
	}
	return pk, nil
}

// IsPublicKeyText reports whether s has the shape of a hex encoded public key.
func IsPublicKeyText(s string) bool {
	return len(s) == NumHexChars && internal.IsHex(s)
}

// String returns the key as upper-case hex.
func (pk PublicKey) String() string {
	return internal.UpperHex(pk[:])
}

// Bytes returns a copy of the key bytes.
func (pk PublicKey) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, pk[:])
	return b
}

// Equal reports whether both keys hold the same bytes.
func (pk PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(pk[:], other[:])
}

// IsZero reports whether the key is all zero, which is what an empty
// address yields as its public key.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}

// MarshalText implements encoding.TextMarshaler.
func (pk PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := FromHex(string(text))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}
