package abacus

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. The tree can
// hold only numeric literals, names, operator applications, and calls to
// functions the parser was given, so there is nothing an expression can make
// the evaluator do beyond arithmetic.
type node struct {
	kind nodeKind

	name string
	fn   Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeName // push lookup(name)

	nodeCall // fn is the Func to call, right is a link to nodeArg unless niladic
	nodeArg  // eval left, right is a link to the next arg

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeArg:
		return "Arg"
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
	case nodeNop:
		return "Nop"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

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
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.fmtargs(b)
	case nodeArg:
		// Args usually only appear inside calls, which are handled by fmtargs.
		b.WriteByte(':')
		n.left.fmt(b)
		if n.right != nil {
			n.right.fmt(b)
		}
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd:
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
	case nodeSub:
		n.left.fmt(b)
		b.WriteString(" - ")
		n.right.fmt(b)
	case nodeMul:
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
	case nodeDiv:
		n.left.fmt(b)
		b.WriteString(" / ")
		n.right.fmt(b)
	case nodePow:
		n.left.fmt(b)
		b.WriteString(" ^ ")
		n.right.fmt(b)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b)
	default:
		panic("abacus: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtargs(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	if n.right == nil {
		// Niladic call.
		return
	}
	n = n.right
	n.left.fmt(b)
	for n.right != nil {
		n = n.right
		b.WriteString(", ")
		n.left.fmt(b)
	}
}
