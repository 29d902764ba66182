// Package seekreader reads a mutable rune buffer as a stream, with
// mark/reset backtracking and absolute repositioning.
//
// A Reader copies at most the runes asked for by each call. It holds no
// lock: the caller must keep the Texter stable for the duration of
// every individual call.
package seekreader

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrClosed is returned by operations on a closed Reader.
var ErrClosed = errors.New("seekreader: reader closed")

var errUnread = errors.New("seekreader: UnreadRune: previous operation was not a successful ReadRune")

// Texter is the buffer a Reader reads. Read copies the runes starting at
// q0 into r and is only called with q0 < Nc().
type Texter interface {
	Nc() int
	Read(q0 int, r []rune) (int, error)
}

// markState is either unset or holds a saved position.
type markState struct {
	set bool
	q   int
}

// Reader implements io.RuneScanner over a Texter.
type Reader struct {
	t    Texter
	q    int
	mark markState

	// canUnread is set by a successful ReadRune.
	canUnread bool
	one       [1]rune
}

// New returns a Reader positioned at the start of t.
func New(t Texter) *Reader {
	return &Reader{t: t}
}

// Pos returns the current read position. It may exceed the length of
// the buffer after Seek.
func (r *Reader) Pos() int { return r.q }

// ReadRune returns the rune at the current position and advances past
// it. size is the UTF-8 length of the rune. At or past the end of the
// buffer it returns io.EOF, as often as it is called.
func (r *Reader) ReadRune() (rune, int, error) {
	r.canUnread = false
	if r.t == nil {
		return 0, 0, ErrClosed
	}
	if r.q >= r.t.Nc() {
		return 0, 0, io.EOF
	}
	if _, err := r.t.Read(r.q, r.one[:]); err != nil {
		return 0, 0, err
	}
	r.q++
	r.canUnread = true
	c := r.one[0]
	return c, utf8.RuneLen(c), nil
}

// UnreadRune steps back over the rune returned by the preceding
// ReadRune.
func (r *Reader) UnreadRune() error {
	if r.t == nil {
		return ErrClosed
	}
	if !r.canUnread {
		return errUnread
	}
	r.canUnread = false
	r.q--
	return nil
}

// Read copies up to len(p) runes into p. Fewer than len(p) runes are
// returned only when the end of the buffer is reached; the following
// call then returns 0, io.EOF.
func (r *Reader) Read(p []rune) (int, error) {
	r.canUnread = false
	if r.t == nil {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	nc := r.t.Nc()
	if r.q >= nc {
		return 0, io.EOF
	}
	if rem := nc - r.q; len(p) > rem {
		p = p[:rem]
	}
	n, err := r.t.Read(r.q, p)
	r.q += n
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// Mark saves the current position for a later Reset. readAheadLimit is
// advisory and is not enforced.
func (r *Reader) Mark(readAheadLimit int) error {
	_ = readAheadLimit
	if r.t == nil {
		return ErrClosed
	}
	r.mark = markState{set: true, q: r.q}
	return nil
}

// Reset moves back to the position saved by the last Mark. Without a
// Mark, it moves to the start of the buffer.
func (r *Reader) Reset() error {
	r.canUnread = false
	if r.t == nil {
		return ErrClosed
	}
	if r.mark.set {
		r.q = r.mark.q
	} else {
		r.q = 0
	}
	return nil
}

func (r *Reader) MarkSupported() bool { return true }

// Seek moves to the absolute position q. Positions past the end are
// accepted; reads from them return io.EOF. Negative positions move to 0.
func (r *Reader) Seek(q int) error {
	r.canUnread = false
	if r.t == nil {
		return ErrClosed
	}
	if q < 0 {
		q = 0
	}
	r.q = q
	return nil
}

// Skip advances up to n runes, stopping at the end of the buffer, and
// returns the number skipped. n <= 0 skips nothing.
func (r *Reader) Skip(n int) (int, error) {
	r.canUnread = false
	if r.t == nil {
		return 0, ErrClosed
	}
	nc := r.t.Nc()
	if n <= 0 || r.q >= nc {
		return 0, nil
	}
	if rem := nc - r.q; n > rem {
		n = rem
	}
	r.q += n
	return n, nil
}

// Ready reports whether a read would not block: always, until Close.
func (r *Reader) Ready() bool { return r.t != nil }

// Close drops the reference to the buffer. Closing twice is harmless.
func (r *Reader) Close() error {
	r.t = nil
	r.mark = markState{}
	r.canUnread = false
	return nil
}
