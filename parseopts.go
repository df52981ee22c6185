package parsemath

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type eofopt struct {
	ws string
}

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger
	// an EOF token from the tokenizer.
	wseof string
}

// StopOn tells the parser to treat a list of whitespace characters as
// ending the expression, so that several expressions can be parsed from
// one reader. Each rune must be a whitespace codepoint. Whitespace does
// not end an expression where an operand is expected, e.g. at the
// beginning of an expression or following an operator or parenthesis.
//
// StopOn overrides the effect of any previous StopOn in the parsing
// options. With no arguments, StopOn produces the default termination
// behavior, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("parsemath: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	return &eofopt{ws: string(v)}
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}
