package mem

import "bytes"

// Fill sets every byte of dst to c.
func Fill(dst []byte, c byte) {
	for i := range dst {
		dst[i] = c
	}
}

// Zero sets every byte of dst to zero.
func Zero(dst []byte) { clear(dst) }

// Copy copies min(len(dst), len(src)) bytes from src to dst. The regions
// must not overlap; use Move for that.
func Copy(dst, src []byte) int { return copy(dst, src) }

// Move copies like Copy but the regions may overlap.
func Move(dst, src []byte) int { return copy(dst, src) }

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool { return bytes.Equal(a, b) }

// Stamp tiles dst with as many full copies of val as fit. A trailing
// region shorter than val is left untouched.
func Stamp(dst, val []byte) {
	if len(val) == 0 {
		return
	}
	for len(dst) >= len(val) {
		copy(dst, val)
		dst = dst[len(val):]
	}
}
