package toxid

import "github.com/go-i2p/go-toxid/toxpk"

// New assembles a classical address and computes its checksum.
func New(pk toxpk.PublicKey, nospam NoSpam) Address {
	var a Address
	a.n = Size
	copy(a.buf[:PublicKeySize], pk[:])
	copy(a.buf[classicalLayout.noSpam:], nospam[:])
	a.seal(classicalLayout)
	return a
}

// NewPQ assembles a post-quantum address and computes its checksum.
func NewPQ(pk toxpk.PublicKey, commitment MLKEMCommitment, nospam NoSpam) Address {
	var a Address
	a.n = SizePQ
	copy(a.buf[:PublicKeySize], pk[:])
	copy(a.buf[pqLayout.commitment:], commitment[:])
	copy(a.buf[pqLayout.noSpam:], nospam[:])
	a.seal(pqLayout)
	return a
}

// WithNoSpam returns a copy of the address carrying a new nospam and a
// recomputed checksum. The variant and commitment are kept. The empty
// address is returned unchanged.
func (a Address) WithNoSpam(nospam NoSpam) Address {
	l, ok := layoutFor(int(a.n))
	if !ok {
		return a
	}
	copy(a.buf[l.noSpam:], nospam[:])
	a.seal(l)
	return a
}

// seal writes the checksum of the payload into the trailing bytes.
func (a *Address) seal(l layout) {
	sum := Checksum(a.buf[:l.checksum])
	copy(a.buf[l.checksum:l.size], sum[:])
}
