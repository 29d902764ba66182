package acmewin

import (
	"9fans.net/go/acme"
)

type option func(*acme.Win, bool) error

// Addtotag returns an option for Report that adds v to the tag of a newly
// created window.
func Addtotag(v string) option {
	return func(w *acme.Win, wasnew bool) error {
		if wasnew {
			return w.Fprintf("tag", "%s", v)
		}
		return nil
	}
}
