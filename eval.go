package script

import (
	"strconv"
	"strings"
)

// Func is a compiled function literal. A Func is immutable, so it is safe to
// evaluate concurrently.
type Func[T Number] struct {
	// args is the argument table.
	args []string
	// body is the parsed expression.
	body []Node[T]
	// float indicates that T is a floating-point type.
	float bool
}

// Arity returns the number of arguments the function takes.
func (f *Func[T]) Arity() int {
	return len(f.args)
}

// Args returns the parameter names in declaration order.
func (f *Func[T]) Args() []string {
	return append(([]string)(nil), f.args...)
}

// Body returns the top-level sequence of the function's expression. The caller
// must not modify the result.
func (f *Func[T]) Body() []Node[T] {
	return f.body
}

// String formats the function as a literal that compiles to the same function.
func (f *Func[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strings.Join(f.args, ", "))
	b.WriteString("){")
	fmtseq(&b, f.body)
	b.WriteByte('}')
	return b.String()
}

// Eval evaluates the function with the given arguments, bound to parameters
// by position. The error is an *ArgCountError if the number of arguments does
// not match the function's arity, or ErrDivideByZero if T is an integer type
// and the expression divides by zero.
func (f *Func[T]) Eval(args ...T) (T, error) {
	if len(args) != len(f.args) {
		return 0, &ArgCountError{Want: len(f.args), Got: len(args)}
	}
	return reduce(f.body, args, f.float)
}

// Call is like Eval but panics on error.
func (f *Func[T]) Call(args ...T) T {
	r, err := f.Eval(args...)
	if err != nil {
		panic(err)
	}
	return r
}

// reduce evaluates a sequence. Groups are evaluated first, then operators are
// applied one at a time, always choosing the leftmost of the highest priority.
func reduce[T Number](seq []Node[T], args []T, float bool) (T, error) {
	vals := make([]T, 0, len(seq)/2+1)
	ops := make([]byte, 0, len(seq)/2)
	for _, n := range seq {
		switch n.kind {
		case KindLiteral:
			vals = append(vals, n.val)
		case KindArgument:
			vals = append(vals, args[n.arg])
		case KindGroup:
			v, err := reduce(n.group, args, float)
			if err != nil {
				return 0, err
			}
			vals = append(vals, v)
		case KindOperator:
			ops = append(ops, n.op)
		default:
			panic("script: invalid node kind " + n.kind.String())
		}
	}
	if len(vals) != len(ops)+1 {
		panic("script: inconsistent sequence: " + strconv.Itoa(len(vals)) + " values for " + strconv.Itoa(len(ops)) + " operators (bad parse?)")
	}
	for len(ops) > 0 {
		k := 0
		for i := 1; i < len(ops); i++ {
			if opPriority(ops[i]) > opPriority(ops[k]) {
				k = i
			}
		}
		v, err := apply(ops[k], vals[k], vals[k+1], float)
		if err != nil {
			return 0, err
		}
		vals[k] = v
		vals = append(vals[:k+1], vals[k+2:]...)
		ops = append(ops[:k], ops[k+1:]...)
	}
	return vals[0], nil
}
