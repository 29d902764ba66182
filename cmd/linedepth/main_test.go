package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/lextrack/file"
	"github.com/rjkroege/lextrack/intseq"
)

func TestReport(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"no final newline", "x", "1\t0\t0\tx\n"},
		{
			name: "func",
			src:  "func f() {\n\treturn // }\n}\n",
			want: "1\t0\t0\tfunc f() {\n" +
				"2\t1\t4\t\treturn // }\n" +
				"3\t1\t0\t}\n",
		},
		{
			name: "blank line kept",
			src:  "a\n\nb\n",
			want: "1\t0\t0\ta\n2\t0\t0\t\n3\t0\t0\tb\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sb := new(strings.Builder)
			if err := report(sb, file.NewRuneArray([]rune(tc.src)), 4); err != nil {
				t.Fatalf("report failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, sb.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReportBadTabwidth(t *testing.T) {
	err := report(new(strings.Builder), file.NewRuneArray([]rune("x\n")), 0)
	if !errors.Is(err, intseq.ErrInvalidArgument) {
		t.Errorf("got err %v want %v", err, intseq.ErrInvalidArgument)
	}
}
