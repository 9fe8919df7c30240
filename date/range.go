package date

import (
	"fmt"
	"time"
)

// Interval is a half-open range of epoch seconds [Start, End).
type Interval struct{ Start, End int64 }

// Interval returns the 24 hours interval starting at midnight of d in loc.
//
// The interval is always exactly 86400 seconds long, even on days where loc
// moves its clocks.
func (d Date) Interval(loc *time.Location) Interval {
	start := d.Midnight(loc).Unix()
	return Interval{Start: start, End: start + int64(Day/time.Second)}
}

// Contains reports whether ts is in the interval, start included, end excluded.
func (r Interval) Contains(ts int64) bool { return r.Start <= ts && ts < r.End }

func (r Interval) String() string { return fmt.Sprintf("[%d, %d)", r.Start, r.End) }
