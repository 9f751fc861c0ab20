package main

import (
	"io"

	"github.com/zephyrtronium/script"
)

// runner carries out the commands for one numeric type.
type runner interface {
	eval(log Logger, w io.Writer, src string, args []string, flags evalFlags) error
	bench(log Logger, w io.Writer, src string, seeds []string, flags benchFlags) error
	check(log Logger, w io.Writer, stdin io.Reader, files []string, flags checkFlags) error
}

// typed implements runner for T.
type typed[T script.Number] struct{}

var runners = map[string]runner{
	"float32": typed[float32]{},
	"float64": typed[float64]{},
	"int":     typed[int]{},
	"int8":    typed[int8]{},
	"int16":   typed[int16]{},
	"int32":   typed[int32]{},
	"int64":   typed[int64]{},
	"uint":    typed[uint]{},
	"uint8":   typed[uint8]{},
	"uint16":  typed[uint16]{},
	"uint32":  typed[uint32]{},
	"uint64":  typed[uint64]{},
}

// values parses command line numbers.
func values[T script.Number](args []string) ([]T, error) {
	r := make([]T, len(args))
	for i, s := range args {
		v, err := script.ParseNumber[T](s)
		if err != nil {
			return nil, err
		}
		r[i] = v
	}
	return r, nil
}
