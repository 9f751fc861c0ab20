package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/script"
	"github.com/zephyrtronium/script/duration"
	"github.com/zephyrtronium/script/stopwatch"
)

type benchFlags struct {
	Iterations int
	Parallel   int
	Warmup     string
}

// AsCliFlags returns a slice of cli.Flag.
func (flags *benchFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Destination: &flags.Iterations,
			Name:        "iterations",
			Value:       1000000,
			Usage:       "Number of calls in each timed run.",
		},
		&cli.IntFlag{
			Destination: &flags.Parallel,
			Name:        "parallel",
			Value:       4,
			Usage:       "Number of goroutines sharing the calls of the parallel run.",
		},
		&cli.StringFlag{
			Destination: &flags.Warmup,
			Name:        "warmup",
			Value:       "0",
			Usage:       "Time to spend calling the function before timing, e.g. 500ms.",
		},
	}
}

// ring feeds results back in as arguments. Call i reads the arity slots
// starting at i and writes the slot just after them, so a unary function
// computes x, f(x), f(f(x)), and so on.
type ring[T script.Number] struct {
	f     *script.Func[T]
	slots []T
	args  []T
}

func newRing[T script.Number](f *script.Func[T], seeds []T) *ring[T] {
	n := f.Arity()
	r := &ring[T]{
		f:     f,
		slots: make([]T, n+3),
		args:  make([]T, n),
	}
	copy(r.slots, seeds)
	return r
}

// run makes calls from start to start+count.
func (r *ring[T]) run(start, count int) error {
	m := len(r.slots)
	for i := start; i < start+count; i++ {
		for k := range r.args {
			r.args[k] = r.slots[(i+k)%m]
		}
		v, err := r.f.Eval(r.args...)
		if err != nil {
			return fmt.Errorf("call %d: %w", i, err)
		}
		r.slots[(i+len(r.args))%m] = v
	}
	return nil
}

type benchRow struct {
	name  string
	calls int
	d     time.Duration
}

func (typed[T]) bench(log Logger, w io.Writer, src string, seedArgs []string, flags benchFlags) error {
	if flags.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, not %d", flags.Iterations)
	}
	if flags.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, not %d", flags.Parallel)
	}
	warmup, err := duration.Parse(flags.Warmup)
	if err != nil {
		return err
	}
	seeds, err := values[T](seedArgs)
	if err != nil {
		return fmt.Errorf("reading seeds: %w", err)
	}
	arity, err := script.Arity(src)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", src, err)
	}
	if len(seeds) > arity {
		return fmt.Errorf("%d seeds for a function of %d arguments", len(seeds), arity)
	}

	var rows []benchRow
	sw := stopwatch.Started("compile", log)
	f, err := script.Compile[T](src, arity)
	if err != nil {
		return fmt.Errorf("compiling %q: %w", src, err)
	}
	rows = append(rows, benchRow{"compile", 1, sw.Report()})

	if warmup > 0 {
		r := newRing(f, seeds)
		calls := 0
		for ws := stopwatch.Started("warmup", log); ws.Elapsed() < warmup; calls += 1000 {
			if err := r.run(calls, 1000); err != nil {
				return err
			}
		}
		log.Debugf("warmed up with %s calls", humanize.Comma(int64(calls)))
	}

	r := newRing(f, seeds)
	sw = stopwatch.Started("serial", log)
	if err := r.run(0, flags.Iterations); err != nil {
		return err
	}
	rows = append(rows, benchRow{"serial", flags.Iterations, sw.Report()})
	last := (flags.Iterations - 1 + arity) % len(r.slots)
	log.Debugf("serial run ended with %s", script.FormatNumber(r.slots[last]))

	var g errgroup.Group
	per := flags.Iterations / flags.Parallel
	sw = stopwatch.Started("parallel", log)
	for p := 0; p < flags.Parallel; p++ {
		count := per
		if p == flags.Parallel-1 {
			count = flags.Iterations - per*(flags.Parallel-1)
		}
		g.Go(func() error {
			return newRing(f, seeds).run(0, count)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	rows = append(rows, benchRow{"parallel", flags.Iterations, sw.Report()})

	fmt.Fprintf(w, "%v\n", f)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Run", "Calls", "Total", "Per call", "Calls/s"})
	for _, row := range rows {
		table.Append([]string{
			row.name,
			humanize.Comma(int64(row.calls)),
			duration.Human(row.d),
			(row.d / time.Duration(row.calls)).String(),
			rate(row.calls, row.d),
		})
	}
	table.Render()
	return nil
}

// rate formats calls per second.
func rate(calls int, d time.Duration) string {
	s := duration.Seconds(d)
	if s <= 0 {
		return "-"
	}
	return humanize.Comma(int64(float64(calls) / s))
}
