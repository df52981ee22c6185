package parsemath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scanAll collects tokens up to and including the first EOF token, or up
// to the first error.
func scanAll(t *testing.T, scan *Tokenizer) ([]Token, error) {
	t.Helper()
	var toks []Token
	for i := 0; i < 1000; i++ {
		tok, err := scan.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
	t.Fatal("tokenizer did not terminate")
	return nil, nil
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		{"empty", "", []Token{{Kind: EOF, Pos: 1}}},
		{"spaces", " \t\r\n", []Token{{Kind: EOF, Pos: 5}}},
		{"zero", "0", []Token{{Kind: Num, Val: 0, Pos: 1}, {Kind: EOF, Pos: 2}}},
		{"real", "3.14", []Token{{Kind: Num, Val: 3.14, Pos: 1}, {Kind: EOF, Pos: 5}}},
		{"long", "9876543210", []Token{{Kind: Num, Val: 9876543210, Pos: 1}, {Kind: EOF, Pos: 11}}},
		{"spaced", " 7 ", []Token{{Kind: Num, Val: 7, Pos: 2}, {Kind: EOF, Pos: 4}}},
		{"adjacent", "1 2", []Token{{Kind: Num, Val: 1, Pos: 1}, {Kind: Num, Val: 2, Pos: 3}, {Kind: EOF, Pos: 4}}},
		{"mixed", "10+2*3/4-5", []Token{
			{Kind: Num, Val: 10, Pos: 1},
			{Kind: Add, Pos: 3},
			{Kind: Num, Val: 2, Pos: 4},
			{Kind: Mul, Pos: 5},
			{Kind: Num, Val: 3, Pos: 6},
			{Kind: Div, Pos: 7},
			{Kind: Num, Val: 4, Pos: 8},
			{Kind: Sub, Pos: 9},
			{Kind: Num, Val: 5, Pos: 10},
			{Kind: EOF, Pos: 11},
		}},
		{"caret", "2^3", []Token{
			{Kind: Num, Val: 2, Pos: 1},
			{Kind: Caret, Pos: 2},
			{Kind: Num, Val: 3, Pos: 3},
			{Kind: EOF, Pos: 4},
		}},
		{"bitwise", "6&3|2", []Token{
			{Kind: Num, Val: 6, Pos: 1},
			{Kind: And, Pos: 2},
			{Kind: Num, Val: 3, Pos: 3},
			{Kind: Or, Pos: 4},
			{Kind: Num, Val: 2, Pos: 5},
			{Kind: EOF, Pos: 6},
		}},
		// A leading minus is an operator token, never part of a literal.
		{"negnum", "-5", []Token{
			{Kind: Sub, Pos: 1},
			{Kind: Num, Val: 5, Pos: 2},
			{Kind: EOF, Pos: 3},
		}},
		{"parens", "(1+2)", []Token{
			{Kind: LeftParen, Pos: 1},
			{Kind: Num, Val: 1, Pos: 2},
			{Kind: Add, Pos: 3},
			{Kind: Num, Val: 2, Pos: 4},
			{Kind: RightParen, Pos: 5},
			{Kind: EOF, Pos: 6},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := NewTokenizer(strings.NewReader(c.src))
			toks, err := scanAll(t, scan)
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if d := cmp.Diff(c.tokens, toks); d != "" {
				t.Errorf("scanning %q gave wrong tokens (-want +got):\n%s", c.src, d)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
		err    error
	}{
		{"unrecognized", "$", nil, &UnrecognizedCharacterError{Col: 1, Char: '$'}},
		{"letter", "1+a", []Token{{Kind: Num, Val: 1, Pos: 1}, {Kind: Add, Pos: 2}}, &UnrecognizedCharacterError{Col: 3, Char: 'a'}},
		// A decimal point cannot start a literal.
		{"dot", ".", nil, &UnrecognizedCharacterError{Col: 1, Char: '.'}},
		{"dotnum", ".5", nil, &UnrecognizedCharacterError{Col: 1, Char: '.'}},
		{"twodots", "1.2.3", nil, &MalformedNumberError{Col: 1, Text: "1.2.3"}},
		{"traildot2", "2..", nil, &MalformedNumberError{Col: 1, Text: "2.."}},
		{"exp", "1e1", []Token{{Kind: Num, Val: 1, Pos: 1}}, &UnrecognizedCharacterError{Col: 2, Char: 'e'}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scan := NewTokenizer(strings.NewReader(c.src))
			var toks []Token
			var err error
			for err == nil {
				var tok Token
				tok, err = scan.Next()
				if err == nil {
					if tok.Kind == EOF {
						t.Fatalf("scanning %q reached EOF without error", c.src)
					}
					toks = append(toks, tok)
				}
			}
			if d := cmp.Diff(c.tokens, toks); d != "" {
				t.Errorf("scanning %q gave wrong tokens before error (-want +got):\n%s", c.src, d)
			}
			switch want := c.err.(type) {
			case *UnrecognizedCharacterError:
				var got *UnrecognizedCharacterError
				if !errors.As(err, &got) {
					t.Fatalf("scanning %q gave error %#v, not UnrecognizedCharacterError", c.src, err)
				}
				if *got != *want {
					t.Errorf("scanning %q: want error %v, got %v", c.src, want, got)
				}
			case *MalformedNumberError:
				var got *MalformedNumberError
				if !errors.As(err, &got) {
					t.Fatalf("scanning %q gave error %#v, not MalformedNumberError", c.src, err)
				}
				if *got != *want {
					t.Errorf("scanning %q: want error %v, got %v", c.src, want, got)
				}
			default:
				t.Fatalf("unhandled error type %T in test case", c.err)
			}
		})
	}
}

func TestLexEOFIdempotent(t *testing.T) {
	scan := NewTokenizer(strings.NewReader("1"))
	tok, err := scan.Next()
	if err != nil || tok.Kind != Num {
		t.Fatalf("first token is %v, %v", tok, err)
	}
	for i := 0; i < 3; i++ {
		tok, err := scan.Next()
		if err != nil {
			t.Fatalf("call %d after input end errored: %v", i, err)
		}
		if tok.Kind != EOF {
			t.Errorf("call %d after input end gave %v, not EOF", i, tok)
		}
	}
}

func TestLexStopOn(t *testing.T) {
	scan := NewTokenizer(strings.NewReader("1\n2"))
	tok, err := scan.next("\n")
	if err != nil || tok.Kind != Num || tok.Val != 1 {
		t.Fatalf("first token is %v, %v", tok, err)
	}
	tok, err = scan.next("\n")
	if err != nil {
		t.Fatalf("stop rune errored: %v", err)
	}
	if tok.Kind != EOF {
		t.Errorf("stop rune gave %v, not EOF", tok)
	}
}
