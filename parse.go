package script

import "strings"

// Func = '(' [ name { sep name } ] ')' '{' Expr '}'
// Expr = Operand { op Operand }
// Operand = number | name | '(' Expr ')'
// op = '+' | '-' | '*' | '/'

// signature is a function literal split into its argument list and body.
type signature struct {
	args    string
	argsoff int
	body    string
	bodyoff int
}

// splitSignature locates the argument list and body of a function literal.
// It uses the first occurrence of each bracket, so the body ends at its first
// close brace.
func splitSignature(src string) (signature, error) {
	if strings.TrimSpace(src) == "" {
		return signature{}, &ParseError{Kind: EmptySource, Col: 1}
	}
	lp, rp := strings.IndexByte(src, '('), strings.IndexByte(src, ')')
	if lp < 0 || rp < 0 || rp < lp {
		return signature{}, &ParseError{Kind: MalformedSignature, Text: src, Col: bracketcol(lp, rp)}
	}
	lb, rb := strings.IndexByte(src, '{'), strings.IndexByte(src, '}')
	if lb < 0 || rb < 0 || rb < lb {
		return signature{}, &ParseError{Kind: MalformedSignature, Text: src, Col: bracketcol(lb, rb)}
	}
	sig := signature{
		args:    src[lp+1 : rp],
		argsoff: lp + 1,
		body:    src[lb+1 : rb],
		bodyoff: lb + 1,
	}
	return sig, nil
}

// bracketcol picks the position to report for a bad bracket pair.
func bracketcol(l, r int) int {
	switch {
	case l < 0 && r < 0:
		return 1
	case l < 0:
		return r + 1
	default:
		return l + 1
	}
}

// Arity returns the number of parameters a function literal declares.
func Arity(src string) (int, error) {
	sig, err := splitSignature(src)
	if err != nil {
		return 0, err
	}
	_, n := scanArgs(sig.args, 0)
	return n, nil
}

// Compile parses a function literal of the given arity for evaluation with
// values of type T. Any error is a *ParseError. The given options are applied
// in order. Panics if arity is negative.
func Compile[T Number](src string, arity int, opts ...ParseOption) (*Func[T], error) {
	if arity < 0 {
		panic("script: negative arity")
	}
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.maxdepth == 0 {
		p.maxdepth = DefaultMaxDepth
	}
	sig, err := splitSignature(src)
	if err != nil {
		return nil, err
	}
	args, n := scanArgs(sig.args, arity)
	if n != arity {
		return nil, &ParseError{Kind: ArityMismatch, Text: sig.args, Col: sig.argsoff + 1, Want: arity, Got: n}
	}
	p.body, p.off, p.args = sig.body, sig.bodyoff, args
	body, _, err := parseseq[T](&p, sig.body, 0)
	if err != nil {
		return nil, err
	}
	f := Func[T]{
		args:  args,
		body:  body,
		float: typeof[T]().float,
	}
	return &f, nil
}

// MustCompile is like Compile but panics if the source cannot be compiled.
func MustCompile[T Number](src string, arity int, opts ...ParseOption) *Func[T] {
	f, err := Compile[T](src, arity, opts...)
	if err != nil {
		panic("script: MustCompile(" + src + "): " + err.Error())
	}
	return f
}

// parseseq parses an alternating sequence of operands and operators. At depth
// zero, it parses until the end of s. Otherwise, it is parsing the inside of a
// group and stops after the matching close paren. The second result is the
// remainder of s following the sequence.
func parseseq[T Number](p *parsectx, s string, depth int) ([]Node[T], string, error) {
	if depth > p.maxdepth {
		return nil, "", &ParseError{Kind: TooDeep, Text: token(s), Col: p.col(s), Want: p.maxdepth}
	}
	var seq []Node[T]
	start := s
	// op is whether we expect an operator next, i.e. whether we have just
	// parsed an operand.
	op := false
	closed := false
	for len(s) > 0 {
		c := s[0]
		if isSpace(c) {
			s = s[1:]
			continue
		}
		if c == ')' {
			if depth == 0 {
				return nil, "", &ParseError{Kind: UnexpectedToken, Text: s[:1], Col: p.col(s)}
			}
			s = s[1:]
			closed = true
			break
		}
		if op {
			if !isOp(c) {
				return nil, "", &ParseError{Kind: ExpectedOperator, Text: token(s), Col: p.col(s)}
			}
			seq = append(seq, operator[T](c))
			s = s[1:]
			op = false
			continue
		}
		switch {
		case c == '(':
			sub, rest, err := parseseq[T](p, s[1:], depth+1)
			if err != nil {
				return nil, "", err
			}
			seq = append(seq, group(sub))
			s = rest
		case isAlpha(c):
			k := matchArg(s, p.args, p.longest)
			if k < 0 {
				return nil, "", &ParseError{Kind: UnknownIdentifier, Text: ident(s), Col: p.col(s)}
			}
			seq = append(seq, argument[T](k, p.args[k]))
			s = s[len(p.args[k]):]
		case isNumStart(c):
			v, n, err := scanNumber[T](s)
			if err != nil {
				err.(*ParseError).Col = p.col(s)
				return nil, "", err
			}
			seq = append(seq, literal(v))
			s = s[n:]
		default:
			return nil, "", &ParseError{Kind: UnexpectedToken, Text: token(s), Col: p.col(s)}
		}
		op = true
	}
	text := start[:len(start)-len(s)]
	if depth > 0 && !closed {
		return nil, "", &ParseError{Kind: UnclosedGroup, Text: "(" + text, Col: p.col(start) - 1}
	}
	if len(seq) == 0 {
		return nil, "", &ParseError{Kind: EmptyGroup, Text: text, Col: p.col(start)}
	}
	if !op {
		return nil, "", &ParseError{Kind: DanglingOperator, Text: text, Col: p.col(start)}
	}
	return seq, s, nil
}
