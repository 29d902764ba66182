// Package runes implements functions for the manipulation of rune slices.
package runes

// IndexRune returns the index of the first instance of r in s, or -1.
func IndexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// Count returns the number of instances of r in s.
func Count(s []rune, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

// Equal reports whether a and b hold the same runes.
func Equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if c != b[i] {
			return false
		}
	}
	return true
}
