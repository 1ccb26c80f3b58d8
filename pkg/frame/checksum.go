package frame

// Checksum computes the one-byte checksum over covered: 0xFF minus the
// low 8 bits of the byte sum. covered spans the frame type byte through
// the last payload byte; the delimiter and length field are excluded.
func Checksum(covered []byte) byte {
	var sum byte
	for _, b := range covered {
		sum += b
	}
	return 0xFF - sum
}

// Verify reports whether ck is the valid checksum for covered, i.e.
// (ck + sum(covered)) mod 256 == 0xFF.
func Verify(covered []byte, ck byte) bool {
	return Checksum(covered) == ck
}
