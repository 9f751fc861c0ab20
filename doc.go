// Package script compiles small arithmetic function literals.
//
// A function literal names its parameters in parentheses and gives a single
// expression in braces, e.g. "(a, b){a * (b - 1.5)}". Expressions are made of
// numeric literals, parameter names, parenthesized subexpressions, and the
// binary operators + - * /. Multiplication and division bind tighter than
// addition and subtraction, and operators of equal precedence associate to the
// left. There are no unary operators, but a literal may carry a sign, so
// "(x){x * -2}" is fine. Parentheses must balance: a close paren with no open
// paren before it, or an open paren that is never closed, is an error rather
// than an end to the expression.
//
// Compile parses a literal once for a given value type and arity. The result
// can be evaluated any number of times, from any number of goroutines, without
// parsing again:
//
//	f, err := script.Compile[float64]("(a, b){a + b}", 2)
//	if err != nil {
//		// err is a *ParseError naming the problem and where it is.
//	}
//	f.Call(3, 4) // 7
//
package script
