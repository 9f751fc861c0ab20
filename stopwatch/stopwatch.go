// Package stopwatch measures wall-clock time for benchmarks and logs it.
//
// To time a whole function:
//
//	defer stopwatch.Started("compile", log).Report()
package stopwatch

import (
	"time"

	"github.com/zephyrtronium/script/duration"
)

// Logger is the part of a logger that Report needs. *logger.Logger from
// github.com/jcgregorio/logger satisfies it.
type Logger interface {
	Infof(format string, args ...interface{})
}

// Stopwatch times one span at a time. It is not safe for concurrent use.
type Stopwatch struct {
	Name string

	log        Logger
	now        func() time.Time
	begin, end time.Time
	running    bool
}

// New creates a stopped stopwatch. With a nil log, Report only returns the time.
func New(name string, log Logger) *Stopwatch {
	return &Stopwatch{Name: name, log: log, now: time.Now}
}

// Started creates a stopwatch that is already running.
func Started(name string, log Logger) *Stopwatch {
	s := New(name, log)
	s.Start()
	return s
}

// Start starts timing from zero.
func (s *Stopwatch) Start() {
	s.running = true
	s.Reset()
}

// Reset moves the beginning of the span to now without changing whether the
// stopwatch is running.
func (s *Stopwatch) Reset() {
	s.begin = s.now()
}

// Stop ends the span.
func (s *Stopwatch) Stop() {
	s.running = false
	s.end = s.now()
}

// Running reports whether the stopwatch is running.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed gives the time from the beginning of the span to now if the
// stopwatch is running, or to the last Stop otherwise.
func (s *Stopwatch) Elapsed() time.Duration {
	end := s.end
	if s.running {
		end = s.now()
	}
	return end.Sub(s.begin)
}

// Report stops the stopwatch if it is running and logs the elapsed time, if
// the stopwatch has a logger. It returns the elapsed time either way.
func (s *Stopwatch) Report() time.Duration {
	if s.running {
		s.Stop()
	}
	d := s.Elapsed()
	if s.log == nil {
		return d
	}
	s.log.Infof("%s: %s (%v)", s.Name, duration.Human(d), d)
	return d
}
