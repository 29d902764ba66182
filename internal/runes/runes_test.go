package runes

import "testing"

func TestIndexRune(t *testing.T) {
	tt := []struct {
		s string
		r rune
		n int
	}{
		{"", 'a', -1},
		{"abc", 'a', 0},
		{"abc", 'c', 2},
		{"私はガラス", 'ガ', 2},
		{"abc", 'x', -1},
	}
	for _, tc := range tt {
		if n := IndexRune([]rune(tc.s), tc.r); n != tc.n {
			t.Errorf("IndexRune(%q, %q) is %v; expected %v", tc.s, tc.r, n, tc.n)
		}
	}
}

func TestCount(t *testing.T) {
	tt := []struct {
		s string
		r rune
		n int
	}{
		{"", '\n', 0},
		{"a\nb\n", '\n', 2},
		{"\n\n\n", '\n', 3},
		{"私は私", '私', 2},
	}
	for _, tc := range tt {
		if n := Count([]rune(tc.s), tc.r); n != tc.n {
			t.Errorf("Count(%q, %q) is %v; expected %v", tc.s, tc.r, n, tc.n)
		}
	}
}

func TestEqual(t *testing.T) {
	tt := []struct {
		a, b string
		ok   bool
	}{
		{"", "", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"ab", "abc", false},
		{"私は", "私は", true},
	}
	for _, tc := range tt {
		if ok := Equal([]rune(tc.a), []rune(tc.b)); ok != tc.ok {
			t.Errorf("Equal(%q, %q) returned %v; expected %v", tc.a, tc.b, ok, tc.ok)
		}
	}
}
