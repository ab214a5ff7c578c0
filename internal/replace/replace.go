// Package replace holds the single-pass byte substitution used by every
// front-end.
package replace

// ReplaceAll overwrites, in place, every byte of buf equal to from with to.
// Nothing else in buf changes and buf is never resized.
func ReplaceAll(buf []byte, from, to byte) {
	if from == to {
		return
	}
	for i := range buf {
		if buf[i] == from {
			buf[i] = to
		}
	}
}

// Count returns how many bytes of buf equal c.
func Count(buf []byte, c byte) int {
	n := 0
	for _, b := range buf {
		if b == c {
			n++
		}
	}
	return n
}
