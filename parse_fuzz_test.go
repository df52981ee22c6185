//go:build go1.18
// +build go1.18

package parsemath_test

import (
	"testing"

	"github.com/PassCMKL/parsemath"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("2^3^2")
	f.Add("6&3|2")
	f.Add("-(1+2)*3")
	f.Add("(1+2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := parsemath.ParseString(s)
		if err != nil {
			return
		}
		// A successful parse must render to a string that parses to the
		// same tree, not merely a similar one.
		r := a.String()
		b, err := parsemath.ParseString(r)
		if err != nil {
			t.Errorf("%q rendered to %q which didn't parse: %v", s, r, err)
			return
		}
		if q := b.String(); q != r {
			t.Errorf("%q rendered to %q which re-rendered to %q", s, r, q)
		}
	})
}
