package script

import (
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a function can be compiled for.
type Number interface {
	constraints.Integer | constraints.Float
}

// numtype describes how to read and write values of a Number type.
type numtype struct {
	float  bool
	signed bool
	bits   int
}

func typeof[T Number]() numtype {
	var zero T
	one, two := T(1), T(2)
	return numtype{
		float:  one/two != zero,
		signed: zero-one < zero,
		bits:   int(unsafe.Sizeof(zero)) * 8,
	}
}

// ParseNumber parses the entirety of s as a value of type T using the same
// rules as literals in function bodies.
func ParseNumber[T Number](s string) (T, error) {
	if s == "" || !isNumStart(s[0]) {
		return 0, &ParseError{Kind: InvalidNumber, Text: s, Col: 1}
	}
	v, n, err := scanNumber[T](s)
	if err != nil {
		err.(*ParseError).Col = 1
		return 0, err
	}
	if n != len(s) {
		return 0, &ParseError{Kind: InvalidNumber, Text: s, Col: 1}
	}
	return v, nil
}

// FormatNumber formats v so that ParseNumber can read it back.
func FormatNumber[T Number](v T) string {
	t := typeof[T]()
	switch {
	case t.float:
		return strconv.FormatFloat(float64(v), 'g', -1, t.bits)
	case t.signed:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}
