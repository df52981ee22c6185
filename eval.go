package parsemath

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates an expression and returns the result. The expression may
// be evaluated any number of times, concurrently if needed, and always
// produces the same result.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the value of the subtree rooted at n. The first error in
// evaluation order stops evaluation of the remaining subtrees.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeAdd:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivisionByZeroError{}
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		// A negative base with a fractional exponent yields NaN, which is
		// a result, not an error.
		return math.Pow(l, r), nil
	case nodeAnd:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return float64(int64(l) & int64(r)), nil
	case nodeOr:
		l, r, err := n.eval2()
		if err != nil {
			return 0, err
		}
		return float64(int64(l) | int64(r)), nil
	default:
		panic("parsemath: invalid AST node " + n.kind.String())
	}
}

// eval2 evaluates both operands of a binary node, left before right.
func (n *node) eval2() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// DivisionByZeroError is an error from a division whose divisor evaluates
// to exactly zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}
