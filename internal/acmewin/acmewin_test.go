package acmewin

import (
	"testing"

	"9fans.net/go/acme"
	"github.com/google/go-cmp/cmp"
)

func TestMatch(t *testing.T) {
	wins := []acme.WinInfo{
		{ID: 1, Name: "/home/gopher/main.go"},
		{ID: 7, Name: "/home/gopher/+Errors"},
		{ID: 12, Name: "3"},
	}
	for _, tc := range []struct {
		spec string
		id   int
		ok   bool
	}{
		{"1", 1, true},
		{"7", 7, true},
		{"/home/gopher/+Errors", 7, true},
		{"3", 12, true},
		{"12", 12, true},
		{"99", 0, false},
		{"main.go", 0, false},
		{"", 0, false},
	} {
		id, ok := match(wins, tc.spec)
		if id != tc.id || ok != tc.ok {
			t.Errorf("match(%q) got %d, %v want %d, %v", tc.spec, id, ok, tc.id, tc.ok)
		}
	}
}

func TestToRunes(t *testing.T) {
	for _, tc := range []struct {
		b    []byte
		want []rune
	}{
		{nil, []rune{}},
		{[]byte("Hello 世界"), []rune("Hello 世界")},
		{[]byte("a\xe7\x95b"), []rune("a\uFFFD\uFFFDb")},
	} {
		if diff := cmp.Diff(tc.want, toRunes(tc.b)); diff != "" {
			t.Errorf("toRunes(%q) mismatch (-want +got):\n%s", tc.b, diff)
		}
	}
}
