// Linedepth prints the bracket depth and indentation of every line of
// its input: the named files, standard input, or the body of an acme
// window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rjkroege/lextrack/file"
	"github.com/rjkroege/lextrack/internal/acmewin"
	"github.com/rjkroege/lextrack/lineindex"
	"github.com/rjkroege/lextrack/nesting"
)

var (
	debug    = flag.Bool("d", false, "set for verbose debugging")
	tabwidth = flag.Int("t", 8, "tab width used to measure indentation")
	winspec  = flag.String("w", "", "read the body of this acme window (id or name)")
	outwin   = flag.String("o", "", "write the report to this acme window instead of stdout")
)

type source struct {
	name string
	text []rune
}

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}
	log.Println("linedepth", flag.Args())

	srcs, err := load()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("linedepth: %v", err)
	}

	var out io.Writer = os.Stdout
	if *outwin != "" {
		win, err := acmewin.Report(*outwin, acmewin.Addtotag(" linedepth"))
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("linedepth: can't open report window %q: %v", *outwin, err)
		}
		defer win.CloseFiles()
		out = acmewin.NewWindowWriter("body", win)
	}

	bw := bufio.NewWriter(out)
	for _, s := range srcs {
		if len(srcs) > 1 {
			fmt.Fprintf(bw, "%s:\n", s.name)
		}
		if err := report(bw, file.NewRuneArray(s.text), *tabwidth); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("linedepth: %s: %v", s.name, err)
		}
	}
	if err := bw.Flush(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("linedepth: write failed: %v", err)
	}
}

func load() ([]source, error) {
	if *winspec != "" {
		win, err := acmewin.Find(*winspec)
		if err != nil {
			return nil, err
		}
		defer win.CloseFiles()
		r, err := acmewin.Body(win)
		if err != nil {
			return nil, err
		}
		return []source{{name: *winspec, text: r}}, nil
	}

	if flag.NArg() == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %v", err)
		}
		return []source{{name: "-", text: []rune(string(b))}}, nil
	}

	srcs := make([]source, 0, flag.NArg())
	for _, fn := range flag.Args() {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, source{name: fn, text: []rune(string(b))})
	}
	return srcs, nil
}

// report writes one line per line of b: line number, bracket depth,
// indentation width and the text.
func report(w io.Writer, b *file.RuneArray, tabwidth int) error {
	x := lineindex.New(b)
	defer x.Close()

	depths, err := nesting.Depths(b)
	if err != nil {
		return err
	}
	if depths.Len() != x.Nlines() {
		panic(fmt.Sprintf("internal error: %d depths for %d lines", depths.Len(), x.Nlines()))
	}

	for l := 0; l < x.Nlines(); l++ {
		q0, q1, err := x.Span(l)
		if err != nil {
			return err
		}
		if l == x.Nlines()-1 && q0 == q1 {
			break
		}
		ind, err := x.Indent(l, tabwidth)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", l+1, depths.GetUnsafe(l), ind, string(b.View(q0, q1))); err != nil {
			return err
		}
	}
	return nil
}
