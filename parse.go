package parsemath

import (
	"io"
	"strings"
)

// Expr = Or
// Or   = And { '|' And }
// And  = AddSub { '&' AddSub }
// AddSub = MulDiv { ('+' | '-') MulDiv }
// MulDiv = Unary { ('*' | '/') Unary }
// Unary  = '-' Unary | Pow
// Pow    = Atom [ '^' Unary ]
// Atom   = num | '(' Expr ')'

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression from src. The given options are applied in
// order. Errors from the tokenizer propagate unchanged.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := NewTokenizer(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.Kind != EOF {
		return nil, &TrailingInputError{Col: tok.Pos, Found: describe(tok)}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// String creates a fully parenthesized string representation of the
// parsed expression. The result parses to an identical expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

// parseterm parses a single term. If there is no error, then parseterm
// pushes the last token it scans, including EOF.
func parseterm(scan *Tokenizer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case Add, Sub, Mul, Div, Caret, And, Or:
			// Binary operator.
			prec := binop(tok.Kind)
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case Num, LeftParen, RightParen, EOF:
			// End of term. There is no implicit multiplication, so a number
			// or open parenthesis here is for the caller to reject.
			scan.push(tok)
			return n, nil
		default:
			panic("parsemath: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., a minus is unary,
// any encountered token must be valid as the start of a subexpression,
// and whitespace normally lexed as EOF is ignored.
func parselhs(scan *Tokenizer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.Kind {
	case Num:
		n = &node{kind: nodeNum, val: tok.Val}
	case Sub:
		// Unary negation.
		prec := negprec
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeNeg, left: rhs}
	case LeftParen:
		open := tok.Pos
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.Kind != RightParen {
			return nil, &UnclosedParenthesisError{Col: end.Pos, Open: open}
		}
		n = rhs
	case Add, Mul, Div, Caret, And, Or, RightParen, EOF:
		return nil, &MissingOperandError{Col: tok.Pos, Found: describe(tok)}
	default:
		panic("parsemath: unknown token: " + tok.String())
	}
	return n, nil
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind. If there is no such
// binary operator, then the result has an op of nodeNone.
func binop(k Kind) operator {
	switch k {
	case Or:
		return operator{1, false, nodeOr}
	case And:
		return operator{2, false, nodeAnd}
	case Add:
		return operator{3, false, nodeAdd}
	case Sub:
		return operator{3, false, nodeSub}
	case Mul:
		return operator{5, false, nodeMul}
	case Div:
		return operator{5, false, nodeDiv}
	case Caret:
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

var (
	// negprec is the precedence of unary negation. It binds tighter than
	// multiplication but looser than exponentiation, so -2^2 is -(2^2).
	negprec = operator{10, true, nodeNeg}
	// exprprec is the precedence required to parse an entire
	// subexpression.
	exprprec = operator{-128, true, nodeNone}
)
