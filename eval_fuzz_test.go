//go:build go1.18
// +build go1.18

package parsemath_test

import (
	"math"
	"testing"

	"github.com/PassCMKL/parsemath"
)

func FuzzEval(f *testing.F) {
	f.Add("3+2*5")
	f.Add("2^3^2")
	f.Add("6.9&3|2")
	f.Add("5/0")
	f.Add("-(0-2)^0.5")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := parsemath.ParseString(s)
		if err != nil {
			return
		}
		r1, err1 := a.Eval()
		r2, err2 := a.Eval()
		if (err1 == nil) != (err2 == nil) {
			t.Errorf("%q evaluated with errors %v and %v", s, err1, err2)
		}
		// Bit equality holds even for NaN results.
		if err1 == nil && math.Float64bits(r1) != math.Float64bits(r2) {
			t.Errorf("%q evaluated to both %g and %g", s, r1, r2)
		}
	})
}
