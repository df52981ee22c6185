package parsemath

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single lexical unit of an expression. Tokens are immutable
// values; the tokenizer produces a new one on each call to Next.
type Token struct {
	// Kind is the token's type.
	Kind Kind
	// Val is the numeric value of a Num token. It is zero for all other
	// kinds.
	Val float64
	// Pos is the 1-based rune column at which the token starts.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF@" + strconv.Itoa(t.Pos)
	case Num:
		return "Num:" + strconv.FormatFloat(t.Val, 'g', -1, 64) + "@" + strconv.Itoa(t.Pos)
	default:
		return t.Kind.String() + ":" + t.Kind.glyph() + "@" + strconv.Itoa(t.Pos)
	}
}

// Kind is the type of a token.
type Kind int

const (
	None Kind = iota
	// EOF indicates the end of the input.
	EOF
	// Num is a numeric literal.
	Num
	// Add through Or are the binary operator symbols.
	Add
	Sub
	Mul
	Div
	Caret
	And
	Or
	// LeftParen and RightParen group subexpressions.
	LeftParen
	RightParen
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case EOF:
		return "EOF"
	case Num:
		return "Num"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Caret:
		return "Caret"
	case And:
		return "And"
	case Or:
		return "Or"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// glyph returns the source character for an operator or punctuation kind.
func (k Kind) glyph() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Caret:
		return "^"
	case And:
		return "&"
	case Or:
		return "|"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return ""
	}
}

// Tokenizer scans an expression into tokens on demand. A Tokenizer cannot
// be restarted; create a new one to scan the same input again.
type Tokenizer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    Token
	eof  bool
}

// NewTokenizer creates a tokenizer reading from src.
func NewTokenizer(src io.RuneScanner) *Tokenizer {
	return &Tokenizer{
		src:  src,
		rune: 1,
	}
}

// Next scans the next token from the input. Once the input is exhausted,
// Next returns an EOF token on every call.
func (t *Tokenizer) Next() (Token, error) {
	return t.next("")
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (t *Tokenizer) push(tok Token) {
	if t.p.Kind != None {
		panic("parsemath: double push")
	}
	t.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (t *Tokenizer) must() Token {
	tok := t.p
	if tok.Kind == None {
		panic("parsemath: no pushed token")
	}
	t.p = Token{}
	return tok
}

// readRune reads a rune from the src and updates the tokenizer's position
// info.
func (t *Tokenizer) readRune() (r rune, err error) {
	r, sz, err := t.src.ReadRune()
	if sz > 0 {
		t.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the tokenizer's
// position info. Panics if unreading returns an error.
func (t *Tokenizer) unreadRune() {
	if err := t.src.UnreadRune(); err != nil {
		panic(err)
	}
	t.rune--
}

// next scans the next token. Runes in wseof are whitespace that ends the
// input instead of separating tokens.
func (t *Tokenizer) next(wseof string) (Token, error) {
	if t.p.Kind != None {
		tok := t.p
		t.p = Token{}
		return tok, nil
	}
	if t.eof {
		return Token{Kind: EOF, Pos: t.rune}, nil
	}
	defer t.buf.Reset()
	tok := Token{Pos: t.rune}
	for {
		r, err := t.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = EOF
				t.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.Kind = EOF
				t.eof = true
				return tok, nil
			}
			tok.Pos++
			continue
		case '0' <= r && r <= '9':
			t.unreadRune()
			t.scanNum()
			text := t.buf.String()
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return tok, &MalformedNumberError{Col: tok.Pos, Text: text}
			}
			tok.Val = v
			tok.Kind = Num
			return tok, nil
		default:
			k := symbols[r]
			if k == None {
				return tok, &UnrecognizedCharacterError{Col: tok.Pos, Char: r}
			}
			tok.Kind = k
			return tok, nil
		}
	}
}

var symbols = map[rune]Kind{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'^': Caret,
	'&': And,
	'|': Or,
	'(': LeftParen,
	')': RightParen,
}

// scanNum accumulates a run of digits and decimal points into the buffer.
// Validation is left to strconv; "1.2.3" scans fully and then fails to
// parse.
func (t *Tokenizer) scanNum() {
	for {
		r, err := t.readRune()
		if err != nil {
			// Only io.EOF is possible here: the rune deciding number
			// scanning was already read once.
			return
		}
		switch {
		case '0' <= r && r <= '9', r == '.':
			t.buf.WriteRune(r)
		default:
			t.unreadRune()
			return
		}
	}
}

// UnrecognizedCharacterError indicates a character outside the supported
// symbol set. It implements InputError.
type UnrecognizedCharacterError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *UnrecognizedCharacterError) Error() string {
	return errpos(err.Col, "unrecognized character "+strconv.QuoteRune(err.Char))
}

func (err *UnrecognizedCharacterError) Pos() int {
	return err.Col
}

// MalformedNumberError indicates a digit sequence that does not form a
// valid floating-point literal, e.g. "1.2.3". It implements InputError.
type MalformedNumberError struct {
	// Col is the position at which the literal starts.
	Col int
	// Text is the scanned literal.
	Text string
}

func (err *MalformedNumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *MalformedNumberError) Pos() int {
	return err.Col
}
