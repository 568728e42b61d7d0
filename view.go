package toxid

import "github.com/go-i2p/go-toxid/toxpk"

// IsValid reports whether the address has an accepted length and its
// checksum matches its payload. The empty address is never valid.
func (a Address) IsValid() bool {
	return checksumOK(a.buf[:a.n])
}

// IsPostQuantum reports whether the address uses the 46-byte layout.
func (a Address) IsPostQuantum() bool {
	return int(a.n) == SizePQ
}

// Variant returns the layout of the address.
func (a Address) Variant() Variant {
	l, ok := layoutFor(int(a.n))
	if !ok {
		return VariantInvalid
	}
	return l.variant
}

// PublicKey returns the leading 32 bytes, or the zero key for the empty address.
func (a Address) PublicKey() toxpk.PublicKey {
	var pk toxpk.PublicKey
	if a.n == 0 {
		return pk
	}
	copy(pk[:], a.buf[:PublicKeySize])
	return pk
}

// NoSpam returns the nospam field. ok is false for the empty address.
func (a Address) NoSpam() (n NoSpam, ok bool) {
	l, ok := layoutFor(int(a.n))
	if !ok {
		return n, false
	}
	copy(n[:], a.buf[l.noSpam:l.noSpam+NoSpamSize])
	return n, true
}

// NoSpamHex returns the nospam as 8 upper-case hex characters, or "" for
// the empty address.
func (a Address) NoSpamHex() string {
	n, ok := a.NoSpam()
	if !ok {
		return ""
	}
	return n.String()
}

// MLKEMCommitment returns the commitment of a post-quantum address. ok is
// false for classical and empty addresses, so an all-zero commitment is
// distinguishable from none.
func (a Address) MLKEMCommitment() (c MLKEMCommitment, ok bool) {
	l, ok := layoutFor(int(a.n))
	if !ok || l.commitment < 0 {
		return c, false
	}
	copy(c[:], a.buf[l.commitment:l.commitment+MLKEMCommitmentSize])
	return c, true
}

// ChecksumBytes returns the stored checksum. ok is false for the empty address.
func (a Address) ChecksumBytes() (sum [ChecksumSize]byte, ok bool) {
	l, ok := layoutFor(int(a.n))
	if !ok {
		return sum, false
	}
	copy(sum[:], a.buf[l.checksum:l.size])
	return sum, true
}
