package nesting

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/lextrack/file"
	"github.com/rjkroege/lextrack/lineindex"
)

func TestDepths(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want []int
	}{
		{"empty", "", []int{0}},
		{"flat", "a\nb\n", []int{0, 0, 0}},
		{
			name: "func",
			src:  "func f() {\n\tif x {\n\t\ty(a[1])\n\t}\n}\n",
			want: []int{0, 1, 2, 2, 1, 0},
		},
		{
			name: "unbalanced close",
			src:  ")}\n{\nx",
			want: []int{0, 0, 1},
		},
		{
			name: "line comment",
			src:  "a { // }}}\nb\n}",
			want: []int{0, 1, 1},
		},
		{
			name: "block comment spanning lines",
			src:  "{ /* {\n{ */ x\n}",
			want: []int{0, 1, 1},
		},
		{
			name: "block comment star slash",
			src:  "/**/{\n/***/\n",
			want: []int{0, 1, 1},
		},
		{
			name: "division is not a comment",
			src:  "(a / b\n/ c)\n",
			want: []int{0, 1, 0},
		},
		{
			name: "slash at end",
			src:  "{\n/",
			want: []int{0, 1},
		},
		{
			name: "strings",
			src:  "s := \"{\\\"(\" + '{'\n[\n",
			want: []int{0, 0, 1},
		},
		{
			name: "unterminated string ends at newline",
			src:  "\"{\n{\n",
			want: []int{0, 0, 1},
		},
		{
			name: "raw string spanning lines",
			src:  "x := `{\n{` + (\n)",
			want: []int{0, 0, 1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := file.NewRuneArray([]rune(tc.src))
			got, err := Depths(b)
			if err != nil {
				t.Fatalf("Depths failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.Values()); diff != "" {
				t.Errorf("depths mismatch (-want +got):\n%s", diff)
			}
			if n := lineindex.New(b).Nlines(); got.Len() != n {
				t.Errorf("got %d depths for %d lines", got.Len(), n)
			}
		})
	}
}

type failingText struct{}

var errBroken = errors.New("broken")

func (failingText) Nc() int                       { return 3 }
func (failingText) Read(int, []rune) (int, error) { return 0, errBroken }

func TestDepthsReadError(t *testing.T) {
	if _, err := Depths(failingText{}); !errors.Is(err, errBroken) {
		t.Errorf("got err %v want %v", err, errBroken)
	}
}
