package toxid

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/go-i2p/go-toxid/internal"
	"github.com/samber/oops"
)

// NoSpam is the 4-byte value a user changes to invalidate old copies of
// their address.
type NoSpam [NoSpamSize]byte

// NoSpamFromUint32 stores v big-endian, the byte order used on the wire.
func NoSpamFromUint32(v uint32) NoSpam {
	var n NoSpam
	binary.BigEndian.PutUint32(n[:], v)
	return n
}

// ParseNoSpam parses 8 hex characters.
func ParseNoSpam(s string) (NoSpam, error) {
	var n NoSpam
	if err := decodeFixedHex(n[:], s, "INVALID_NOSPAM"); err != nil {
		return n, err
	}
	return n, nil
}

// GenerateNoSpam draws a random nospam value.
func GenerateNoSpam() (NoSpam, error) {
	var n NoSpam
	b, err := internal.RandomBytes(NoSpamSize)
	if err != nil {
		return n, oops.
			Code("NOSPAM_GENERATION_FAILED").
			In("toxid").
			Wrapf(err, "failed to read random nospam")
	}
	copy(n[:], b)
	return n, nil
}

// Uint32 returns the nospam as a big-endian integer.
func (n NoSpam) Uint32() uint32 {
	return binary.BigEndian.Uint32(n[:])
}

// String returns the nospam as 8 upper-case hex characters.
func (n NoSpam) String() string {
	return internal.UpperHex(n[:])
}

// MLKEMCommitment is the 8-byte digest binding a post-quantum
// key-encapsulation key to an address.
type MLKEMCommitment [MLKEMCommitmentSize]byte

// ParseMLKEMCommitment parses 16 hex characters.
func ParseMLKEMCommitment(s string) (MLKEMCommitment, error) {
	var c MLKEMCommitment
	if err := decodeFixedHex(c[:], s, "INVALID_MLKEM_COMMITMENT"); err != nil {
		return c, err
	}
	return c, nil
}

// String returns the commitment as 16 upper-case hex characters.
func (c MLKEMCommitment) String() string {
	return internal.UpperHex(c[:])
}

func decodeFixedHex(dst []byte, s, code string) error {
	if len(s) != len(dst)*2 || !internal.IsHex(s) {
		return oops.
			Code(code).
			In("toxid").
			With("hex_length", len(s)).
			Errorf("expected %d hex characters", len(dst)*2)
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return oops.
			Code(code).
			In("toxid").
			Wrapf(err, "failed to decode hex")
	}
	return nil
}
