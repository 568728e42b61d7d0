package toxid

// Checksum folds payload into two bytes by XORing every even-indexed byte
// into the first slot and every odd-indexed byte into the second.
// It guards against typos and truncation, not against deliberate forgery.
func Checksum(payload []byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	for i, b := range payload {
		sum[i%ChecksumSize] ^= b
	}
	return sum
}

// checksumOK reports whether buf is an address whose trailing checksum
// matches the fold of the bytes before it.
func checksumOK(buf []byte) bool {
	l, ok := layoutFor(len(buf))
	if !ok {
		return false
	}
	want := Checksum(buf[:l.checksum])
	return buf[l.checksum] == want[0] && buf[l.checksum+1] == want[1]
}
