// Package nesting measures bracket depth line by line in C-like source.
package nesting

import (
	"io"

	"github.com/rjkroege/lextrack/intseq"
	"github.com/rjkroege/lextrack/seekreader"
)

type scanner struct {
	r      *seekreader.Reader
	depths *intseq.Seq
	depth  int
}

// Depths returns, for every line of t, the number of brackets open at
// the start of that line. Brackets inside comments and string or rune
// literals are ignored. Unbalanced closing brackets never take the
// depth below zero.
func Depths(t seekreader.Texter) (*intseq.Seq, error) {
	s := &scanner{r: seekreader.New(t), depths: intseq.From(0)}
	defer s.r.Close()

	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.depths, nil
}

// next returns io.EOF at the end of the text.
func (s *scanner) next() (rune, error) {
	c, _, err := s.r.ReadRune()
	return c, err
}

func (s *scanner) newline() { s.depths.Append(s.depth) }

func (s *scanner) scan() error {
	for {
		c, err := s.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch c {
		case '\n':
			s.newline()
		case '{', '[', '(':
			s.depth++
		case '}', ']', ')':
			if s.depth > 0 {
				s.depth--
			}
		case '"', '\'':
			err = s.quoted(c)
		case '`':
			err = s.raw()
		case '/':
			err = s.slash()
		}
		if err != nil && err != io.EOF {
			return err
		}
	}
}

// quoted skips to the closing quote q. A newline ends the literal and is
// left for the caller.
func (s *scanner) quoted(q rune) error {
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		switch c {
		case q:
			return nil
		case '\n':
			return s.r.UnreadRune()
		case '\\':
			if c, err = s.next(); err != nil {
				return err
			}
			if c == '\n' {
				return s.r.UnreadRune()
			}
		}
	}
}

func (s *scanner) raw() error {
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		switch c {
		case '`':
			return nil
		case '\n':
			s.newline()
		}
	}
}

// slash looks one rune ahead of a '/' for a comment opener, backing up
// if there is none.
func (s *scanner) slash() error {
	if err := s.r.Mark(1); err != nil {
		return err
	}
	c, err := s.next()
	if err != nil && err != io.EOF {
		return err
	}
	switch {
	case err == nil && c == '/':
		return s.lineComment()
	case err == nil && c == '*':
		return s.blockComment()
	}
	return s.r.Reset()
}

func (s *scanner) lineComment() error {
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		if c == '\n' {
			return s.r.UnreadRune()
		}
	}
}

func (s *scanner) blockComment() error {
	star := false
	for {
		c, err := s.next()
		if err != nil {
			return err
		}
		switch {
		case star && c == '/':
			return nil
		case c == '\n':
			s.newline()
		}
		star = c == '*'
	}
}
