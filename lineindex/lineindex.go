// Package lineindex tracks where each line of a file.RuneArray starts,
// updating the table in place as the buffer is edited.
package lineindex

import (
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rjkroege/lextrack/file"
	"github.com/rjkroege/lextrack/internal/runes"
	"github.com/rjkroege/lextrack/intseq"
)

// Index holds the rune offset of the start of every line. The first
// line always starts at 0; every other line starts just after a '\n'.
type Index struct {
	b      *file.RuneArray
	starts *intseq.Seq
}

// New builds the Index for b and registers it as an observer of b.
func New(b *file.RuneArray) *Index {
	x := &Index{b: b, starts: intseq.From(0)}
	for q, c := range b.View(0, b.Nc()) {
		if c == '\n' {
			x.starts.Append(q + 1)
		}
	}
	b.AddObserver(x)
	return x
}

// Close stops tracking edits.
func (x *Index) Close() {
	x.b.DelObserver(x)
}

// Nlines returns the number of lines. A buffer ending in '\n' has an
// empty last line.
func (x *Index) Nlines() int { return x.starts.Len() }

// Starts returns a copy of the line start offsets.
func (x *Index) Starts() []int { return x.starts.Values() }

// Start returns the offset of the first rune of line.
func (x *Index) Start(line int) (int, error) {
	return x.starts.Get(line)
}

// Span returns the range of line, excluding its terminating '\n'.
func (x *Index) Span(line int) (q0, q1 int, err error) {
	q0, err = x.starts.Get(line)
	if err != nil {
		return 0, 0, err
	}
	if line+1 < x.starts.Len() {
		return q0, x.starts.GetUnsafe(line+1) - 1, nil
	}
	return q0, x.b.Nc(), nil
}

// Line returns the line holding offset q. Offsets past the end map to
// the last line.
func (x *Index) Line(q int) int {
	if q < 0 {
		return 0
	}
	return x.starts.Search(q+1) - 1
}

// Indent returns the display width of the leading white space of line,
// with tab stops every tabwidth columns.
func (x *Index) Indent(line, tabwidth int) (int, error) {
	if tabwidth <= 0 {
		return 0, fmt.Errorf("lineindex.Indent: tab width %d: %w", tabwidth, intseq.ErrInvalidArgument)
	}
	q0, q1, err := x.Span(line)
	if err != nil {
		return 0, err
	}
	w := 0
	for _, c := range x.b.View(q0, q1) {
		switch {
		case c == '\t':
			w += tabwidth - w%tabwidth
		case unicode.IsSpace(c):
			w += runewidth.RuneWidth(c)
		default:
			return w, nil
		}
	}
	return w, nil
}

// shift moves the starts in [from, Nlines) by delta.
func (x *Index) shift(from, delta int) {
	var err error
	switch delta {
	case 0:
		return
	case 1:
		err = x.starts.Increment(from, x.starts.Len())
	case -1:
		err = x.starts.Decrement(from, x.starts.Len())
	default:
		err = x.starts.Add(from, x.starts.Len(), delta)
	}
	if err != nil {
		panic(fmt.Sprintf("internal error: lineindex shift: %v", err))
	}
}

// Inserted implements file.BufferObserver.
func (x *Index) Inserted(q0 int, r []rune) {
	if len(r) == 0 {
		return
	}
	l := x.Line(q0)
	x.shift(l+1, len(r))

	added := make([]int, 0, runes.Count(r, '\n'))
	for i, c := range r {
		if c == '\n' {
			added = append(added, q0+i+1)
		}
	}
	if err := x.starts.InsertSlice(l+1, added); err != nil {
		panic(fmt.Sprintf("internal error: lineindex Inserted: %v", err))
	}
}

// Deleted implements file.BufferObserver.
func (x *Index) Deleted(q0, q1 int) {
	if q0 == q1 {
		return
	}
	// A start at p follows the '\n' at p-1, so [q0,q1) swallows the
	// starts in [q0+1, q1].
	a := x.starts.Search(q0 + 1)
	b := x.starts.Search(q1 + 1)
	if err := x.starts.RemoveRange(a, b); err != nil {
		panic(fmt.Sprintf("internal error: lineindex Deleted: %v", err))
	}
	x.shift(a, q0-q1)
}
