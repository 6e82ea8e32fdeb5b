package calc

import (
	"strconv"
	"strings"
)

// Expr is an expression tree built from a token sequence. It evaluates to the
// same result as Evaluate on the tokens it was built from.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// node is a node in the tree of an expression.
type node struct {
	kind nodeKind

	num float64
	// text is the token text the node was built from.
	text string

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // num

	nodeSqrt // sqrt of left
	nodeLn   // ln of left
	nodeLog  // log10 of left

	nodeAdd    // left + right
	nodeSub    // left - right
	nodeMul    // left × right
	nodeNegMul // left * right, from a negation sign
	nodeDiv    // left ÷ right
	nodePow    // left ^ right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

var opkinds = map[string]nodeKind{
	fnSqrt:   nodeSqrt,
	fnLn:     nodeLn,
	fnLog:    nodeLog,
	opAdd:    nodeAdd,
	opSub:    nodeSub,
	opMul:    nodeMul,
	opNegMul: nodeNegMul,
	opDiv:    nodeDiv,
	opPow:    nodePow,
}

// ParseString tokenizes an expression, checks its parentheses, and builds
// its tree.
func ParseString(expression string) (*Expr, error) {
	toks, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	if err := CheckBalance(expression); err != nil {
		return nil, err
	}
	return Build(toks)
}

// Build creates an expression tree from tokens using the same precedence
// rules as Evaluate. It reports the same structural errors Evaluate does;
// domain errors such as division by zero are left to Eval.
func Build(tokens []Token) (*Expr, error) {
	m := machine[*node]{
		leaf:  leaf,
		apply: branch,
	}
	n, err := m.run(tokens)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

func leaf(tok Token) (*node, error) {
	v, err := number(tok)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNum, num: v, text: tok.Text}, nil
}

func branch(op Token, args []*node) (*node, error) {
	n := &node{kind: opkinds[op.Text], text: op.Text, left: args[0]}
	if len(args) > 1 {
		n.right = args[1]
	}
	return n, nil
}

// Eval computes the value of the expression.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

func (e *Expr) String() string {
	return e.n.String()
}

func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeSqrt, nodeLn, nodeLog:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return funcs[n.text](x)
	case nodeAdd, nodeSub, nodeMul, nodeNegMul, nodeDiv, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return binops[n.text](l, r)
	default:
		panic("calc: invalid tree node " + n.kind.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node fully bracketed, alternating round and square brackets
// by depth.
func (n *node) fmt(b *strings.Builder, square bool) {
	if n.kind == nodeNum {
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	switch n.kind {
	case nodeSqrt, nodeLn, nodeLog:
		b.WriteString(n.text)
		b.WriteByte(l)
		n.left.fmt(b, !square)
		b.WriteByte(r)
	case nodeAdd, nodeSub, nodeMul, nodeNegMul, nodeDiv, nodePow:
		b.WriteByte(l)
		n.left.fmt(b, !square)
		b.WriteString(" " + n.text + " ")
		n.right.fmt(b, !square)
		b.WriteByte(r)
	default:
		panic("calc: invalid tree node " + n.kind.String() + " after writing " + b.String())
	}
}
