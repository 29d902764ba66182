// Package file provides an in-memory rune buffer that reports every
// edit to registered observers.
package file

import (
	"io"
	"unicode/utf8"

	"github.com/rjkroege/lextrack/internal/runes"
)

// RuneArray is a mutable array of runes. It satisfies
// seekreader.Texter.
type RuneArray struct {
	r         []rune
	observers map[BufferObserver]struct{}
}

func NewRuneArray(r []rune) *RuneArray {
	b := &RuneArray{r: make([]rune, len(r))}
	copy(b.r, r)
	return b
}

// Insert adds r at q0 and notifies the observers.
func (b *RuneArray) Insert(q0 int, r []rune) {
	if q0 < 0 || q0 > len(b.r) {
		panic("internal error: RuneArray.Insert: out of range insertion")
	}
	n := len(b.r)
	b.r = append(b.r, r...)
	copy(b.r[q0+len(r):], b.r[q0:n])
	copy(b.r[q0:], r)
	for o := range b.observers {
		o.Inserted(q0, r)
	}
}

// Delete removes [q0, q1) and notifies the observers.
func (b *RuneArray) Delete(q0, q1 int) {
	if q0 < 0 || q1 > len(b.r) || q0 > q1 {
		panic("internal error: RuneArray.Delete: out of range delete")
	}
	copy(b.r[q0:], b.r[q1:])
	b.r = b.r[:len(b.r)-(q1-q0)] // Reslice to length
	for o := range b.observers {
		o.Deleted(q0, q1)
	}
}

// Read copies the runes starting at q0 into r. It returns io.EOF when r
// extends past the end of the buffer.
func (b *RuneArray) Read(q0 int, r []rune) (int, error) {
	n := copy(r, b.r[q0:])
	if n < len(r) {
		return n, io.EOF
	}
	return n, nil
}

func (b *RuneArray) ReadC(q int) rune { return b.r[q] }

// String returns a string representation of buffer. See fmt.Stringer interface.
func (b *RuneArray) String() string { return string(b.r) }

// Reset empties the buffer. Observers see it as a deletion of everything.
func (b *RuneArray) Reset() {
	if len(b.r) > 0 {
		b.Delete(0, len(b.r))
	}
}

// Nc returns the number of characters in the RuneArray.
func (b *RuneArray) Nc() int { return len(b.r) }

// Nbyte returns the number of bytes needed to store the contents
// of the buffer in UTF-8.
func (b *RuneArray) Nbyte() int {
	bc := 0
	for _, r := range b.r {
		bc += utf8.RuneLen(r)
	}
	return bc
}

// View returns the runes in [q0, q1) without copying. The slice is only
// valid until the next edit.
func (b *RuneArray) View(q0, q1 int) []rune {
	if q1 > len(b.r) {
		q1 = len(b.r)
	}
	return b.r[q0:q1]
}

func (b *RuneArray) IndexRune(r rune) int {
	return runes.IndexRune(b.r, r)
}

func (b *RuneArray) Equal(s *RuneArray) bool {
	return runes.Equal(b.r, s.r)
}

// AddObserver registers o for edit notifications.
func (b *RuneArray) AddObserver(o BufferObserver) {
	if b.observers == nil {
		b.observers = make(map[BufferObserver]struct{})
	}
	b.observers[o] = struct{}{}
}

// DelObserver removes o. It is not an error if o was never added.
func (b *RuneArray) DelObserver(o BufferObserver) {
	delete(b.observers, o)
}

func (b *RuneArray) HasMultipleObservers() bool {
	return len(b.observers) > 1
}
