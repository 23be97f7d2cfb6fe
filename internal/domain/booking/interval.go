package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// farFuture is the sentinel end bound for open-ended stays (no checkout
// recorded yet). An open stay overlaps everything from its start onward.
var farFuture = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Interval is a half-open time range [start, end). It is the single
// overlap predicate shared by stays and reservations; both availability
// checks go through Overlaps.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// NewOpenInterval is used for stays still in progress.
func NewOpenInterval(start time.Time) Interval {
	return Interval{start: start, end: farFuture}
}

// ReconstructInterval rebuilds an interval from storage without
// validation. Open-ended stays round-trip through their sentinel end.
func ReconstructInterval(start, end time.Time) Interval {
	return Interval{start: start, end: end}
}

func (i Interval) Start() time.Time { return i.start }

func (i Interval) End() time.Time { return i.end }

func (i Interval) IsOpenEnded() bool { return i.end.Equal(farFuture) }

// Overlaps reports whether two half-open intervals intersect:
// a.start < b.end && a.end > b.start. Boundary touching (end == start)
// is not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && i.end.After(other.start)
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) String() string {
	if i.IsOpenEnded() {
		return fmt.Sprintf("[%s,)", i.start.Format(time.RFC3339))
	}
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}
