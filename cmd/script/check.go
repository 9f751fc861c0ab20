package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/script"
	"github.com/zephyrtronium/script/cache"
)

type checkFlags struct {
	Arity     int
	CacheSize int
	MaxDepth  int
}

// AsCliFlags returns a slice of cli.Flag.
func (flags *checkFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Destination: &flags.Arity,
			Name:        "arity",
			Value:       -1,
			Usage:       "Arity every function must have. Negative means each function's own.",
		},
		&cli.IntFlag{
			Destination: &flags.CacheSize,
			Name:        "cache_size",
			Value:       cache.DefaultSize,
			Usage:       "Number of compiled functions to remember, so repeated lines compile once.",
		},
		&cli.IntFlag{
			Destination: &flags.MaxDepth,
			Name:        "max_depth",
			Value:       script.DefaultMaxDepth,
			Usage:       "Deepest bracket nesting allowed.",
		},
	}
}

func (typed[T]) check(log Logger, w io.Writer, stdin io.Reader, files []string, flags checkFlags) error {
	if flags.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, not %d", flags.MaxDepth)
	}
	c, err := cache.New[T](flags.CacheSize)
	if err != nil {
		return err
	}
	opts := []script.ParseOption{script.MaxDepth(flags.MaxDepth)}
	var errs *multierror.Error
	lines := 0
	checkFile := func(name string, r io.Reader) error {
		sc := bufio.NewScanner(r)
		for n := 1; sc.Scan(); n++ {
			src := strings.TrimSpace(sc.Text())
			if src == "" || strings.HasPrefix(src, "#") {
				continue
			}
			lines++
			arity := flags.Arity
			var err error
			if arity < 0 {
				arity, err = script.Arity(src)
				if err != nil {
					errs = multierror.Append(errs, fmt.Errorf("%s:%d: %w", name, n, err))
					continue
				}
			}
			f, err := c.GetOrCompile(src, arity, opts...)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s:%d: %w", name, n, err))
				continue
			}
			log.Debugf("%s:%d: %v", name, n, f)
		}
		return sc.Err()
	}

	if len(files) == 0 {
		if err := checkFile("<stdin>", stdin); err != nil {
			return err
		}
	}
	for _, name := range files {
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		err = checkFile(name, file)
		file.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	}

	fmt.Fprintf(w, "%d functions, %d cached, %d errors\n", lines, c.Len(), len(errs.WrappedErrors()))
	return errs.ErrorOrNil()
}
