// Package toxid implements the Tox peer address: a public key bound to an
// anti-spam nonce and a checksum, optionally extended with an ML-KEM
// commitment for post-quantum identity verification.
//
// Addresses travel as hex text (76 characters classical, 92 post-quantum) or
// as raw bytes (38 or 46). Untrusted input goes through Parse, ParseBytes or
// the total FromText/FromBytes constructors; input the caller already
// shape-checked can use MustFromText/MustFromBytes, which panic on violation.
package toxid

import (
	"encoding/hex"
	"unsafe"

	"github.com/go-i2p/go-toxid/internal"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// Address is an immutable Tox address value. The zero Address is the
// empty/invalid address. Copies never share storage, so an Address can be
// read concurrently without locking.
//
// Use Equal rather than == to compare peers: two addresses denote the same
// peer when their public keys match, whatever their nospam or checksum.
type Address struct {
	buf [SizePQ]byte
	n   uint8
}

// FromText builds an Address from 76 or 92 hex characters. Any other input
// yields the empty Address. The checksum is not verified; see IsValid.
func FromText(s string) Address {
	if !LooksLikeAddress(s) {
		log.WithFields(logrus.Fields{
			"text_length": len(s),
		}).Debug("rejected address text with invalid shape")
		return Address{}
	}

	var a Address
	n, err := hex.Decode(a.buf[:], []byte(s))
	if err != nil {
		return Address{}
	}
	a.n = uint8(n)
	return a
}

// FromBytes builds an Address from a 38 or 46 byte buffer. The bytes are
// copied. Any other length yields the empty Address.
func FromBytes(b []byte) Address {
	if _, ok := layoutFor(len(b)); !ok {
		log.WithFields(logrus.Fields{
			"byte_length": len(b),
		}).Debug("rejected address bytes with invalid length")
		return Address{}
	}

	var a Address
	a.n = uint8(copy(a.buf[:], b))
	return a
}

// FromPointer builds an Address from n bytes starting at p, for callers that
// receive raw memory from a foreign interface. n is trusted to lie within
// the allocation behind p. Bytes are only read when n is an address size.
func FromPointer(p *byte, n int) Address {
	if p == nil || n <= 0 {
		return FromBytes(nil)
	}
	if _, ok := layoutFor(n); !ok {
		return FromBytes(nil)
	}
	return FromBytes(unsafe.Slice(p, n))
}

// Parse is the fallible counterpart of FromText. It reports why text does
// not have the shape of an address. A well-shaped address with a bad
// checksum parses successfully and reports false from IsValid.
func Parse(s string) (Address, error) {
	if len(s) != NumHexChars && len(s) != NumHexCharsPQ {
		return Address{}, oops.
			Code("INVALID_ADDRESS_LENGTH").
			In("toxid").
			With("hex_length", len(s)).
			Errorf("address must be %d or %d hex characters", NumHexChars, NumHexCharsPQ)
	}
	if !internal.IsHex(s) {
		return Address{}, oops.
			Code("INVALID_ADDRESS_CHARSET").
			In("toxid").
			With("hex_length", len(s)).
			Errorf("address contains non-hex characters")
	}
	return FromText(s), nil
}

// ParseBytes is the fallible counterpart of FromBytes.
func ParseBytes(b []byte) (Address, error) {
	if _, ok := layoutFor(len(b)); !ok {
		return Address{}, oops.
			Code("INVALID_ADDRESS_SIZE").
			In("toxid").
			With("byte_length", len(b)).
			Errorf("address must be %d or %d bytes", Size, SizePQ)
	}
	return FromBytes(b), nil
}

// MustFromText is like Parse but panics if s is not shaped like an address.
// It is meant for input the caller has already checked.
func MustFromText(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustFromBytes is like ParseBytes but panics on an invalid length.
func MustFromBytes(b []byte) Address {
	a, err := ParseBytes(b)
	if err != nil {
		panic(err)
	}
	return a
}

// String renders the address as upper-case hex, or "" for the empty address.
func (a Address) String() string {
	return internal.UpperHex(a.buf[:a.n])
}

// Bytes returns a copy of the raw address, or nil for the empty address.
func (a Address) Bytes() []byte {
	if a.n == 0 {
		return nil
	}
	b := make([]byte, a.n)
	copy(b, a.buf[:a.n])
	return b
}

// Size returns the address length in bytes: 0, Size or SizePQ.
func (a Address) Size() int {
	return int(a.n)
}

// IsEmpty reports whether a is the empty address.
func (a Address) IsEmpty() bool {
	return a.n == 0
}

// Clear resets the variable to the empty address. Other copies of the
// value are unaffected.
func (a *Address) Clear() {
	*a = Address{}
}

// Equal reports whether both addresses carry the same public key.
func (a Address) Equal(other Address) bool {
	return a.PublicKey() == other.PublicKey()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to
// the empty address; other text must have the shape of an address.
func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
