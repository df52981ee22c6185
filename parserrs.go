package parsemath

import "strconv"

// MissingOperandError is an error indicating that the parser expected a
// number or parenthesized subexpression and found none. It implements
// InputError.
type MissingOperandError struct {
	// Col is the position of the token found instead of an operand.
	Col int
	// Found is the token found instead, or the empty string at the end of
	// the input.
	Found string
}

func (err *MissingOperandError) Error() string {
	if err.Found == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "missing operand: no expression")
		}
		return errpos(err.Col, "missing operand at end")
	}
	return errpos(err.Col, "missing operand before "+strconv.Quote(err.Found))
}

func (err *MissingOperandError) Pos() int {
	return err.Col
}

// UnclosedParenthesisError is an error indicating an opening parenthesis
// without a matching close. It implements InputError.
type UnclosedParenthesisError struct {
	// Col is the position at which the close parenthesis was required.
	Col int
	// Open is the position of the unmatched open parenthesis.
	Open int
}

func (err *UnclosedParenthesisError) Error() string {
	return errpos(err.Col, "unclosed parenthesis opened at "+strconv.Itoa(err.Open))
}

func (err *UnclosedParenthesisError) Pos() int {
	return err.Col
}

// TrailingInputError is an error indicating extra tokens after a complete
// expression. It implements InputError.
type TrailingInputError struct {
	// Col is the position of the first trailing token.
	Col int
	// Found is the first trailing token.
	Found string
}

func (err *TrailingInputError) Error() string {
	return errpos(err.Col, "trailing input starting with "+strconv.Quote(err.Found))
}

func (err *TrailingInputError) Pos() int {
	return err.Col
}

// describe renders a token for use in an error message. The result is
// empty for EOF.
func describe(tok Token) string {
	if tok.Kind == Num {
		return strconv.FormatFloat(tok.Val, 'g', -1, 64)
	}
	return tok.Kind.glyph()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*MissingOperandError)(nil)
	_ InputError = (*UnclosedParenthesisError)(nil)
	_ InputError = (*TrailingInputError)(nil)
	_ InputError = (*UnrecognizedCharacterError)(nil)
	_ InputError = (*MalformedNumberError)(nil)
)
