package script

// opPriority gives the binding strength of a binary operator. Higher binds
// tighter.
func opPriority(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		panic("script: invalid operator " + string(op))
	}
}

// apply evaluates a binary operator. float tells whether T is a floating-point
// type, in which case division by zero follows IEEE 754 instead of failing.
func apply[T Number](op byte, l, r T, float bool) (T, error) {
	switch op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 && !float {
			return 0, ErrDivideByZero
		}
		return l / r, nil
	default:
		panic("script: invalid operator " + string(op))
	}
}
