// Package schedule generates coupon-style date schedules, composing
// tenor stepping, roll conventions and business-day calendars.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/roll"
	"github.com/meenmo/qfdate/tenor"
	"github.com/meenmo/qfdate/utils"
)

// ErrInvalidSchedule is returned for a zero-length frequency or an end
// date before the start date.
var ErrInvalidSchedule = errors.New("schedule: invalid schedule")

// Stub places the irregular period of a schedule.
type Stub int

const (
	// StubBack anchors stepping at the start date; any irregular period
	// sits at the back, against the end date.
	StubBack Stub = iota
	// StubFront anchors stepping at the end date; any irregular period
	// sits at the front, against the start date.
	StubFront
)

// Schedule is an ascending, deduplicated sequence of dates.
type Schedule []time.Time

// Period is one accrual period between consecutive schedule dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// Periods pairs consecutive schedule dates for day-count consumption.
func (s Schedule) Periods() []Period {
	if len(s) < 2 {
		return nil
	}
	out := make([]Period, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, Period{Start: s[i-1], End: s[i]})
	}
	return out
}

// Generate produces the schedule of dates from start to end stepping by
// freq, each date adjusted under rule and cal (start and end included).
// Stepped dates are anchor + i*freq rather than cumulative, so
// end-of-month clamping never drifts across periods. Coinciding rolled
// dates are deduplicated; the result is ascending, starting at the
// rolled start and ending at the rolled end.
func Generate(start, end time.Time, freq tenor.Tenor, rule roll.Rule, cal *calendar.Calendar, stub Stub) (Schedule, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s before start %s", ErrInvalidSchedule,
			utils.FormatDate(end), utils.FormatDate(start))
	}
	if freq.IsZero() {
		return nil, fmt.Errorf("%w: zero frequency", ErrInvalidSchedule)
	}

	var unadjusted []time.Time
	switch stub {
	case StubBack:
		unadjusted = append(unadjusted, start)
		prev := start
		for i := 1; ; i++ {
			d := freq.Mul(i).Apply(start)
			if !d.After(prev) {
				return nil, fmt.Errorf("%w: frequency %s does not advance", ErrInvalidSchedule, freq)
			}
			if !d.Before(end) {
				break
			}
			unadjusted = append(unadjusted, d)
			prev = d
		}
		unadjusted = append(unadjusted, end)
	case StubFront:
		unadjusted = append(unadjusted, end)
		prev := end
		for i := 1; ; i++ {
			d := freq.Mul(-i).Apply(end)
			if !d.Before(prev) {
				return nil, fmt.Errorf("%w: frequency %s does not advance", ErrInvalidSchedule, freq)
			}
			if !d.After(start) {
				break
			}
			unadjusted = append(unadjusted, d)
			prev = d
		}
		unadjusted = append(unadjusted, start)
	default:
		return nil, fmt.Errorf("%w: unknown stub %d", ErrInvalidSchedule, int(stub))
	}

	out := make(Schedule, 0, len(unadjusted))
	for _, d := range unadjusted {
		adj, err := roll.Adjust(d, rule, cal)
		if err != nil {
			return nil, fmt.Errorf("schedule: adjust %s: %w", utils.FormatDate(d), err)
		}
		out = append(out, adj)
	}
	utils.SortDates(out)

	dedup := out[:0]
	for i, d := range out {
		if i == 0 || !d.Equal(dedup[len(dedup)-1]) {
			dedup = append(dedup, d)
		}
	}
	return dedup, nil
}

// AddTenor applies a tenor to a date and rolls the result, the usual
// one-shot settlement-date calculation.
func AddTenor(from time.Time, t tenor.Tenor, rule roll.Rule, cal *calendar.Calendar) (time.Time, error) {
	return roll.Adjust(t.Apply(from), rule, cal)
}
