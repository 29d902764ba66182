// Package acmewin finds acme/Edwood windows, reads their bodies and
// writes reports into them.
package acmewin

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"unicode/utf8"

	"9fans.net/go/acme"
)

// match returns the id of the window named by spec: either a window id
// or a window name.
func match(wins []acme.WinInfo, spec string) (int, bool) {
	id, err := strconv.Atoi(spec)
	for _, wi := range wins {
		if (err == nil && wi.ID == id) || wi.Name == spec {
			return wi.ID, true
		}
	}
	return 0, false
}

// Find opens the existing window named by spec, an id or a name.
func Find(spec string) (*acme.Win, error) {
	wins, err := acme.Windows()
	if err != nil {
		return nil, fmt.Errorf("acmewin: window list not available: %v", err)
	}
	id, ok := match(wins, spec)
	if !ok {
		return nil, fmt.Errorf("acmewin: no window %q", spec)
	}
	log.Println("acmewin.Find", spec, id)
	win, err := acme.Open(id, nil)
	if err != nil {
		return nil, fmt.Errorf("acmewin: acme.Open %d: %v", id, err)
	}
	return win, nil
}

// Body returns the text of the window body.
func Body(win *acme.Win) ([]rune, error) {
	b, err := win.ReadAll("body")
	if err != nil {
		return nil, fmt.Errorf("acmewin: reading body: %v", err)
	}
	return toRunes(b), nil
}

func toRunes(b []byte) []rune {
	r := make([]rune, 0, utf8.RuneCount(b))
	for len(b) > 0 {
		c, w := utf8.DecodeRune(b)
		r = append(r, c)
		b = b[w:]
	}
	return r
}

// Report finds the window called name, creating it if needed, empties
// its body and applies opts.
func Report(name string, opts ...option) (*acme.Win, error) {
	wins, err := acme.Windows()
	if err != nil {
		return nil, fmt.Errorf("acmewin: window list not available: %v", err)
	}

	var win *acme.Win
	wasnew := false
	if id, ok := match(wins, name); ok {
		if win, err = acme.Open(id, nil); err != nil {
			return nil, fmt.Errorf("acmewin: acme.Open %d: %v", id, err)
		}
	} else {
		log.Println("acmewin making a new window", name)
		wasnew = true
		if win, err = acme.New(); err != nil {
			return nil, fmt.Errorf("acmewin: acme.New: %v", err)
		}
		if err := win.Name(name); err != nil {
			return nil, fmt.Errorf("acmewin: win.Name: %v", err)
		}
	}
	win.Clear()

	allerrs := make([]error, 0)
	for _, opt := range opts {
		allerrs = append(allerrs, opt(win, wasnew))
	}
	return win, errors.Join(allerrs...)
}
