// Command script compiles and runs function literals from the command line.
//
//	script eval '(a, b){a * b + 1}' 3 4
//	script --type int bench --iterations 1000000 '(a){a * 3 / 2}' 1
//	script check functions.txt
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jcgregorio/logger"
	"github.com/urfave/cli/v2"
)

// Logger is the logging the commands do. *logger.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type syncWriter interface {
	io.Writer
	Sync() error
}

func newLogger(w syncWriter, verbose bool) Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		IncludeDebug: verbose,
	})
}

// appFlags are the flags common to every command.
type appFlags struct {
	Type    string
	Verbose bool
}

// AsCliFlags returns a slice of cli.Flag.
func (flags *appFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.Type,
			Name:        "type",
			Value:       "float64",
			Usage:       "Numeric type of arguments and results, one of " + strings.Join(typeNames(), ", ") + ".",
		},
		&cli.BoolFlag{
			Destination: &flags.Verbose,
			Name:        "verbose",
			Usage:       "Log debug messages.",
		},
	}
}

// app holds the state the commands share once flags are parsed.
type app struct {
	flags appFlags
	log   Logger
	run   runner
}

func newApp(stdout io.Writer, stderr syncWriter) *cli.App {
	a := &app{log: newLogger(stderr, false)}
	var ev evalFlags
	var bf benchFlags
	var cf checkFlags
	return &cli.App{
		Name:      "script",
		Usage:     "Compile and run arithmetic function literals.",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     a.flags.AsCliFlags(),
		Before: func(c *cli.Context) error {
			a.log = newLogger(stderr, a.flags.Verbose)
			r, ok := runners[a.flags.Type]
			if !ok {
				return fmt.Errorf("unknown type %q, want one of %s", a.flags.Type, strings.Join(typeNames(), ", "))
			}
			a.run = r
			a.log.Debugf("using type %s", a.flags.Type)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "Evaluate a function once. The number of values given is its arity.",
				ArgsUsage: "FUNCTION [VALUE...]",
				Flags:     ev.AsCliFlags(),
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return fmt.Errorf("eval needs a function")
					}
					args := c.Args().Slice()
					return a.run.eval(a.log, c.App.Writer, args[0], args[1:], ev)
				},
			},
			{
				Name:      "bench",
				Usage:     "Time compiling a function and calling it many times.",
				ArgsUsage: "FUNCTION [SEED...]",
				Flags:     bf.AsCliFlags(),
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return fmt.Errorf("bench needs a function")
					}
					args := c.Args().Slice()
					return a.run.bench(a.log, c.App.Writer, args[0], args[1:], bf)
				},
			},
			{
				Name:      "check",
				Usage:     "Compile every function in files, one per line. Reads stdin if no files are given.",
				ArgsUsage: "[FILE...]",
				Flags:     cf.AsCliFlags(),
				Action: func(c *cli.Context) error {
					return a.run.check(a.log, c.App.Writer, c.App.Reader, c.Args().Slice(), cf)
				},
			},
		},
	}
}

func main() {
	log := newLogger(os.Stderr, false)
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func typeNames() []string {
	r := make([]string, 0, len(runners))
	for k := range runners {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}
