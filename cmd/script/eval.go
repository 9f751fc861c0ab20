package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/script"
)

type evalFlags struct {
	Echo    bool
	Longest bool
}

// AsCliFlags returns a slice of cli.Flag.
func (flags *evalFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Destination: &flags.Echo,
			Name:        "echo",
			Usage:       "Print the compiled function before the result.",
		},
		&cli.BoolFlag{
			Destination: &flags.Longest,
			Name:        "longest",
			Usage:       "Match the longest argument name instead of the first declared.",
		},
	}
}

func (flags evalFlags) options() []script.ParseOption {
	if flags.Longest {
		return []script.ParseOption{script.LongestMatch()}
	}
	return nil
}

func (typed[T]) eval(log Logger, w io.Writer, src string, args []string, flags evalFlags) error {
	vals, err := values[T](args)
	if err != nil {
		return fmt.Errorf("reading arguments: %w", err)
	}
	f, err := script.Compile[T](src, len(vals), flags.options()...)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", src, err)
	}
	log.Debugf("compiled %v", f)
	r, err := f.Eval(vals...)
	if err != nil {
		return fmt.Errorf("evaluating %v: %w", f, err)
	}
	if flags.Echo {
		fmt.Fprintf(w, "%v : ", f)
	}
	fmt.Fprintln(w, script.FormatNumber(r))
	return nil
}
