package parsemath

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Each node
// owns its children exclusively; the tree is never shared or mutated once
// the parser returns it.
type node struct {
	kind nodeKind

	val float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeAnd // evaluate both, bitwise and on truncated ints
	nodeOr  // evaluate both, bitwise or on truncated ints
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	case nodeAnd:
		return "And"
	case nodeOr:
		return "Or"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree, which parses
// back to an identical tree.
func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		// 'f' keeps large values out of exponent notation, which the
		// tokenizer has no syntax for.
		b.WriteString(strconv.FormatFloat(n.val, 'f', -1, 64))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.binfmt(b, " + ")
	case nodeSub:
		n.binfmt(b, " - ")
	case nodeMul:
		n.binfmt(b, " * ")
	case nodeDiv:
		n.binfmt(b, " / ")
	case nodePow:
		n.binfmt(b, " ^ ")
	case nodeAnd:
		n.binfmt(b, " & ")
	case nodeOr:
		n.binfmt(b, " | ")
	default:
		panic("parsemath: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binfmt(b *strings.Builder, op string) {
	n.left.fmt(b)
	b.WriteString(op)
	n.right.fmt(b)
}
