// Package intseq implements a growable sequence of ints that supports
// the bulk range edits needed to keep per-line or per-region bookkeeping
// in step with an edited buffer.
//
// A Seq is not safe for concurrent use.
package intseq

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// RangeError describes a rejected index or range. From == To for single
// index operations.
type RangeError struct {
	Op       string
	From, To int
	Len      int
}

func (e *RangeError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("intseq.%s: index %d out of range [0:%d]", e.Op, e.From, e.Len)
	}
	return fmt.Sprintf("intseq.%s: range [%d:%d) out of range [0:%d]", e.Op, e.From, e.To, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }

// Seq is a sequence of ints. The elements are data[:n]; data[n:] is
// scratch.
type Seq struct {
	data []int
	n    int
}

// New returns an empty Seq with room for capacity elements.
func New(capacity int) (*Seq, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("intseq.New: capacity %d: %w", capacity, ErrInvalidArgument)
	}
	return &Seq{data: make([]int, capacity)}, nil
}

// From returns a Seq holding a copy of values.
func From(values ...int) *Seq {
	s := &Seq{data: make([]int, len(values)), n: len(values)}
	copy(s.data, values)
	return s
}

// Clone returns an independent copy of s.
func (s *Seq) Clone() *Seq {
	return From(s.data[:s.n]...)
}

func (s *Seq) Len() int      { return s.n }
func (s *Seq) Cap() int      { return len(s.data) }
func (s *Seq) IsEmpty() bool { return s.n == 0 }

// Clear empties s without releasing its storage.
func (s *Seq) Clear() { s.n = 0 }

// Values returns a copy of the elements of s.
func (s *Seq) Values() []int {
	v := make([]int, s.n)
	copy(v, s.data[:s.n])
	return v
}

func (s *Seq) String() string {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	for i, v := range s.data[:s.n] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%d", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s *Seq) index(op string, i int) error {
	if i < 0 || i >= s.n {
		return &RangeError{Op: op, From: i, To: i, Len: s.n}
	}
	return nil
}

// insertionPoint accepts s.n, meaning append.
func (s *Seq) insertionPoint(op string, i int) error {
	if i < 0 || i > s.n {
		return &RangeError{Op: op, From: i, To: i, Len: s.n}
	}
	return nil
}

func (s *Seq) span(op string, from, to int) error {
	if from < 0 || to > s.n || from > to {
		return &RangeError{Op: op, From: from, To: to, Len: s.n}
	}
	return nil
}

// grow makes room for at least need elements, doubling when it can.
func (s *Seq) grow(need int) {
	if need <= len(s.data) {
		return
	}
	c := 2 * len(s.data)
	if c < need {
		c = need
	}
	d := make([]int, c)
	copy(d, s.data[:s.n])
	s.data = d
}

// open shifts data[i:n] right by k, leaving data[i:i+k] to be filled.
func (s *Seq) open(i, k int) {
	s.grow(s.n + k)
	copy(s.data[i+k:], s.data[i:s.n])
	s.n += k
}

// Get returns the element at i.
func (s *Seq) Get(i int) (int, error) {
	if err := s.index("Get", i); err != nil {
		return 0, err
	}
	return s.data[i], nil
}

// GetUnsafe returns the element at i without checking i against Len.
// The result for i outside [0, Len) is undefined.
func (s *Seq) GetUnsafe(i int) int { return s.data[i] }

// Set replaces the element at i.
func (s *Seq) Set(i, v int) error {
	if err := s.index("Set", i); err != nil {
		return err
	}
	s.data[i] = v
	return nil
}

// SetUnsafe is Set without the bounds check.
func (s *Seq) SetUnsafe(i, v int) { s.data[i] = v }

// Append adds v at the end of s.
func (s *Seq) Append(v int) {
	s.grow(s.n + 1)
	s.data[s.n] = v
	s.n++
}

// Insert places v at i, moving the elements at and after i up by one.
func (s *Seq) Insert(i, v int) error {
	if err := s.insertionPoint("Insert", i); err != nil {
		return err
	}
	s.open(i, 1)
	s.data[i] = v
	return nil
}

// InsertSlice places vs, in order, starting at i.
func (s *Seq) InsertSlice(i int, vs []int) error {
	if err := s.insertionPoint("InsertSlice", i); err != nil {
		return err
	}
	s.open(i, len(vs))
	copy(s.data[i:], vs)
	return nil
}

// InsertRange places count copies of v starting at offset.
func (s *Seq) InsertRange(offset, count, v int) error {
	if err := s.insertionPoint("InsertRange", offset); err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("intseq.InsertRange: count %d: %w", count, ErrInvalidArgument)
	}
	s.open(offset, count)
	for i := offset; i < offset+count; i++ {
		s.data[i] = v
	}
	return nil
}

// Remove deletes and returns the element at i.
func (s *Seq) Remove(i int) (int, error) {
	if err := s.index("Remove", i); err != nil {
		return 0, err
	}
	v := s.data[i]
	copy(s.data[i:], s.data[i+1:s.n])
	s.n--
	return v, nil
}

// RemoveRange deletes the elements in [from, to).
func (s *Seq) RemoveRange(from, to int) error {
	if err := s.span("RemoveRange", from, to); err != nil {
		return err
	}
	copy(s.data[from:], s.data[to:s.n])
	s.n -= to - from
	return nil
}

// Add adds delta to every element in [from, to).
func (s *Seq) Add(from, to, delta int) error {
	if err := s.span("Add", from, to); err != nil {
		return err
	}
	s.add(from, to, delta)
	return nil
}

func (s *Seq) add(from, to, delta int) {
	d := s.data[from:to]
	for i := range d {
		d[i] += delta
	}
}

// Increment adds one to every element in [from, to).
func (s *Seq) Increment(from, to int) error {
	if err := s.span("Increment", from, to); err != nil {
		return err
	}
	s.add(from, to, 1)
	return nil
}

// Decrement subtracts one from every element in [from, to).
func (s *Seq) Decrement(from, to int) error {
	if err := s.span("Decrement", from, to); err != nil {
		return err
	}
	s.add(from, to, -1)
	return nil
}

// Fill sets every element of s to v.
func (s *Seq) Fill(v int) {
	d := s.data[:s.n]
	for i := range d {
		d[i] = v
	}
}

// Contains reports whether v is an element of s.
func (s *Seq) Contains(v int) bool {
	for _, x := range s.data[:s.n] {
		if x == v {
			return true
		}
	}
	return false
}

// Search returns the smallest index i with s[i] >= v, or Len if there is
// none. s must be sorted in ascending order.
func (s *Seq) Search(v int) int {
	lo, hi := 0, s.n
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if s.data[m] < v {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}
