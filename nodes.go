package script

import (
	"strconv"
	"strings"
)

// Node is one element of a parsed expression: a literal, an operator, a
// reference to an argument, or a parenthesized group owning its own sequence.
// Nodes are immutable.
type Node[T Number] struct {
	kind Kind

	// op is the operator character for KindOperator.
	op byte
	// arg is the index into the argument table for KindArgument, and name is
	// the parameter's name.
	arg  int
	name string
	// val is the value of KindLiteral.
	val T
	// group is the nested sequence for KindGroup.
	group []Node[T]
}

// Kind identifies the alternative held by a Node.
type Kind int8

const (
	KindNone Kind = iota

	KindLiteral  // val
	KindOperator // op
	KindArgument // args[arg]
	KindGroup    // reduce(group)
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindLiteral:
		return "Literal"
	case KindOperator:
		return "Operator"
	case KindArgument:
		return "Argument"
	case KindGroup:
		return "Group"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func literal[T Number](v T) Node[T] {
	return Node[T]{kind: KindLiteral, val: v}
}

func operator[T Number](op byte) Node[T] {
	return Node[T]{kind: KindOperator, op: op}
}

func argument[T Number](index int, name string) Node[T] {
	return Node[T]{kind: KindArgument, arg: index, name: name}
}

func group[T Number](seq []Node[T]) Node[T] {
	return Node[T]{kind: KindGroup, group: seq}
}

// Kind returns the kind of node.
func (n Node[T]) Kind() Kind {
	return n.kind
}

// Value returns the value of a literal node.
func (n Node[T]) Value() T {
	return n.val
}

// Op returns the operator character of an operator node.
func (n Node[T]) Op() byte {
	return n.op
}

// Arg returns the argument table index and name of an argument node.
func (n Node[T]) Arg() (index int, name string) {
	return n.arg, n.name
}

// Group returns the sequence inside a group node. The caller must not modify
// the result.
func (n Node[T]) Group() []Node[T] {
	return n.group
}

func (n Node[T]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n Node[T]) fmt(b *strings.Builder) {
	switch n.kind {
	case KindLiteral:
		b.WriteString(FormatNumber(n.val))
	case KindOperator:
		b.WriteByte(n.op)
	case KindArgument:
		b.WriteString(n.name)
	case KindGroup:
		b.WriteByte('(')
		fmtseq(b, n.group)
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
	}
}

// fmtseq writes a sequence with single spaces between its elements.
func fmtseq[T Number](b *strings.Builder, seq []Node[T]) {
	for i, n := range seq {
		if i != 0 {
			b.WriteByte(' ')
		}
		n.fmt(b)
	}
}
