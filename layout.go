package toxid

import "github.com/go-i2p/go-toxid/toxpk"

// Classical address: [PK:32][NoSpam:4][Checksum:2]
// Post-quantum address: [PK:32][MLKEMCommitment:8][NoSpam:4][Checksum:2]
const (
	// PublicKeySize is the length of the leading public key field.
	PublicKeySize = toxpk.Size
	// MLKEMCommitmentSize is the length of the ML-KEM commitment carried by
	// post-quantum addresses.
	MLKEMCommitmentSize = 8
	// NoSpamSize is the length of the nospam field.
	NoSpamSize = 4
	// ChecksumSize is the length of the trailing checksum.
	ChecksumSize = 2

	// Size is the length of a classical address in bytes.
	Size = PublicKeySize + NoSpamSize + ChecksumSize
	// SizePQ is the length of a post-quantum address in bytes.
	SizePQ = PublicKeySize + MLKEMCommitmentSize + NoSpamSize + ChecksumSize

	// NumHexChars is the length of a classical address rendered as hex.
	NumHexChars = Size * 2
	// NumHexCharsPQ is the length of a post-quantum address rendered as hex.
	NumHexCharsPQ = SizePQ * 2
)

// layout holds the field offsets of one address variant. Every offset used
// by the codec, the accessors and the checksum comes from here.
type layout struct {
	variant    Variant
	size       int
	commitment int // -1 when the variant carries no commitment
	noSpam     int
	checksum   int
}

var (
	classicalLayout = layout{
		variant:    VariantClassical,
		size:       Size,
		commitment: -1,
		noSpam:     PublicKeySize,
		checksum:   Size - ChecksumSize,
	}
	pqLayout = layout{
		variant:    VariantPostQuantum,
		size:       SizePQ,
		commitment: PublicKeySize,
		noSpam:     PublicKeySize + MLKEMCommitmentSize,
		checksum:   SizePQ - ChecksumSize,
	}
)

// layoutFor selects the layout for a buffer of n bytes.
func layoutFor(n int) (layout, bool) {
	switch n {
	case Size:
		return classicalLayout, true
	case SizePQ:
		return pqLayout, true
	default:
		return layout{}, false
	}
}

// Variant identifies which of the two address layouts a value uses.
type Variant int

const (
	// VariantInvalid is the variant of the empty address
	VariantInvalid Variant = iota
	// VariantClassical is the 38-byte layout
	VariantClassical
	// VariantPostQuantum is the 46-byte layout with an ML-KEM commitment
	VariantPostQuantum
)

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantClassical:
		return "classical"
	case VariantPostQuantum:
		return "post-quantum"
	default:
		return "invalid"
	}
}
