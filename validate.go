package toxid

import "github.com/go-i2p/go-toxid/internal"

// IsClassicalText reports whether s is exactly 76 hex characters.
func IsClassicalText(s string) bool {
	return len(s) == NumHexChars && internal.IsHex(s)
}

// IsPQText reports whether s is exactly 92 hex characters.
func IsPQText(s string) bool {
	return len(s) == NumHexCharsPQ && internal.IsHex(s)
}

// LooksLikeAddress reports whether s has the shape of either address
// variant. It does not verify the checksum.
func LooksLikeAddress(s string) bool {
	return IsClassicalText(s) || IsPQText(s)
}

// IsValidText reports whether s is shaped like an address and its checksum
// matches.
func IsValidText(s string) bool {
	return LooksLikeAddress(s) && FromText(s).IsValid()
}
