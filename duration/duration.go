// Package duration reads and prints the time spans used on the command line.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/hako/durafmt"
)

// ErrEmpty is returned by Parse for an empty time.
var ErrEmpty = errors.New("duration: empty time")

// Parse reads a decimal number of seconds with an optional unit suffix. The
// suffixes are s, ms, us and ns; the trailing s may be left off the last three.
// A bare number is in seconds. Fractions are rounded to the nanosecond.
//
//	Parse("1.5")   // 1.5s
//	Parse("250ms") // 250ms
//	Parse("10u")   // 10µs
func Parse(s string) (time.Duration, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	str := s
	if str[len(str)-1] == 's' {
		str = str[:len(str)-1]
	}
	if str == "" {
		return 0, fmt.Errorf("duration: unrecognized time %q", s)
	}
	// Nanoseconds per unit.
	unit := 1e9
	switch str[len(str)-1] {
	case 'n':
		unit = 1
	case 'u':
		unit = 1e3
	case 'm':
		unit = 1e6
	}
	if unit != 1e9 {
		str = str[:len(str)-1]
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("duration: unrecognized time %q: %w", s, err)
	}
	ns := math.Round(v * unit)
	if math.IsNaN(ns) || math.Abs(ns) >= math.MaxInt64 {
		return 0, fmt.Errorf("duration: time %q out of range", s)
	}
	return time.Duration(ns), nil
}

// FromSeconds converts a number of seconds to a Duration, rounding to the
// nanosecond.
func FromSeconds(sec float64) time.Duration {
	return time.Duration(math.Round(sec * 1e9))
}

// Seconds gives d as a fractional number of seconds.
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}

// Human formats d in words, e.g. "1 minute 30 seconds".
func Human(d time.Duration) string {
	return durafmt.Parse(d).String()
}
