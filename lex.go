package script

import (
	"strconv"
	"strings"
)

// Operators contains the characters which are binary operators.
const Operators = "+-*/"

func isAlpha(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

func isOp(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// isNumStart reports whether c can begin a numeric literal.
func isNumStart(c byte) bool {
	return isDigit(c) || c == '+' || c == '-' || c == '.'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

// ident returns the identifier-like run at the start of s.
func ident(s string) string {
	i := 0
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	return s[:i]
}

// token returns the text at the start of s up to the next space or bracket,
// for error messages.
func token(s string) string {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isSpace(c), c == '(', c == ')':
			if i == 0 {
				return s[:1]
			}
			return s[:i]
		}
	}
	return s
}

// numlen returns the length of the longest prefix of s which has the shape of
// a number, or 0 if there is none. Integers are an optional sign and digits.
// Floats may also have a fraction and an exponent; an incomplete exponent is
// left unscanned.
func numlen(s string, float bool) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	k := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	dig := i - k
	if !float {
		if dig == 0 {
			return 0
		}
		return i
	}
	if i < len(s) && s[i] == '.' {
		i++
		k = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		dig += i - k
	}
	if dig == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k = j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > k {
			i = j
		}
	}
	return i
}

// scanNumber parses the numeric literal at the start of s as a T. It returns
// the value and the number of bytes consumed. The error, if any, is a
// *ParseError with no position; the caller fills it in.
func scanNumber[T Number](s string) (T, int, error) {
	t := typeof[T]()
	n := numlen(s, t.float)
	if n == 0 {
		return 0, 0, &ParseError{Kind: InvalidNumber, Text: token(s)}
	}
	text := s[:n]
	switch {
	case t.float:
		f, err := strconv.ParseFloat(text, t.bits)
		if err != nil {
			return 0, 0, &ParseError{Kind: InvalidNumber, Text: text}
		}
		return T(f), n, nil
	case t.signed:
		i, err := strconv.ParseInt(text, 10, t.bits)
		if err != nil {
			return 0, 0, &ParseError{Kind: InvalidNumber, Text: text}
		}
		return T(i), n, nil
	default:
		// ParseUint rejects signs. A + is harmless; a - never is.
		u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, t.bits)
		if err != nil {
			return 0, 0, &ParseError{Kind: InvalidNumber, Text: text}
		}
		return T(u), n, nil
	}
}

// scanArgs scans the text of an argument list into a table of n names. Any
// character that cannot begin a name separates names. The second result is
// the number of names in the list, which may differ from n; names past the
// first n are not stored.
func scanArgs(s string, n int) ([]string, int) {
	args := make([]string, n)
	count := 0
	for i := 0; i < len(s); {
		if !isAlpha(s[i]) {
			i++
			continue
		}
		name := ident(s[i:])
		if count < n {
			args[count] = name
		}
		count++
		i += len(name)
	}
	return args, count
}

// matchArg finds the argument named at the start of s. Normally the first name
// in declaration order which is a prefix of s is used, so with arguments a and
// ab, "ab" is a followed by b. If longest is true, the longest such name wins
// instead. The result is an index into args, or -1 if no name matches.
func matchArg(s string, args []string, longest bool) int {
	k := -1
	for i, name := range args {
		if !strings.HasPrefix(s, name) {
			continue
		}
		if !longest {
			return i
		}
		if k < 0 || len(name) > len(args[k]) {
			k = i
		}
	}
	return k
}
