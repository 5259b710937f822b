// Package calendar provides immutable business-day calendars: a holiday
// set plus a weekend rule, with business-day predicates and navigation.
package calendar

import (
	"errors"
	"time"

	"github.com/meenmo/qfdate/utils"
)

// ErrAllWeekend is returned when a calendar is constructed with every
// weekday marked as weekend, which would leave no reachable business day.
var ErrAllWeekend = errors.New("calendar: every day of the week is defined as a weekend")

// Calendar is an immutable set of holidays plus a weekend rule. All
// methods are pure; a Calendar is safe for concurrent use once built.
type Calendar struct {
	name     string
	holidays map[string]struct{}
	weekend  map[time.Weekday]struct{}
}

// New builds a calendar from a holiday list and an optional weekend rule.
// With no weekend days given, Saturday and Sunday are used. Duplicate
// holidays are deduped silently. Marking all seven weekdays as weekend
// fails with ErrAllWeekend.
func New(name string, holidays []time.Time, weekend ...time.Weekday) (*Calendar, error) {
	w := make(map[time.Weekday]struct{}, 2)
	if len(weekend) == 0 {
		w[time.Saturday] = struct{}{}
		w[time.Sunday] = struct{}{}
	} else {
		for _, d := range weekend {
			w[d] = struct{}{}
		}
	}
	if len(w) == 7 {
		return nil, ErrAllWeekend
	}

	h := make(map[string]struct{}, len(holidays))
	for _, d := range holidays {
		h[utils.FormatDate(d)] = struct{}{}
	}
	return &Calendar{name: name, holidays: h, weekend: w}, nil
}

// MustNew is New for static calendar tables; it panics on a bad weekend rule.
func MustNew(name string, holidays []time.Time, weekend ...time.Weekday) *Calendar {
	c, err := New(name, holidays, weekend...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the calendar's name.
func (c *Calendar) Name() string { return c.name }

// Holidays returns the holiday dates in ascending order.
func (c *Calendar) Holidays() []time.Time {
	out := make([]time.Time, 0, len(c.holidays))
	for k := range c.holidays {
		d, err := utils.ParseDate(k)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	utils.SortDates(out)
	return out
}

// IsWeekend reports whether t falls on a weekend day.
func (c *Calendar) IsWeekend(t time.Time) bool {
	_, ok := c.weekend[t.Weekday()]
	return ok
}

// IsHoliday reports whether t is in the holiday set.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[utils.FormatDate(t)]
	return ok
}

// IsBusinessDay reports whether t is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if c.IsWeekend(t) {
		return false
	}
	return !c.IsHoliday(t)
}

// NextBusinessDay advances day by day until a business day is reached.
// It returns t unchanged when t is already a business day.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PreviousBusinessDay retreats day by day until a business day is reached.
// It returns t unchanged when t is already a business day.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// AddBusinessDays adds days business days to from (days can be negative).
// A non-business start date is first settled to a business day: upward
// when adjustUp is true, downward otherwise.
func (c *Calendar) AddBusinessDays(from time.Time, days int, adjustUp bool) time.Time {
	var t time.Time
	if adjustUp {
		t = c.NextBusinessDay(from)
	} else {
		t = c.PreviousBusinessDay(from)
	}
	step := 1
	if days < 0 {
		step = -1
		days = -days
	}
	for days > 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			days--
		}
	}
	return t
}

// Union combines two calendars: a day is non-business in the result if
// either calendar marks it as a holiday or weekend day. The two inputs
// are left untouched.
func (c *Calendar) Union(other *Calendar) *Calendar {
	h := make(map[string]struct{}, len(c.holidays)+len(other.holidays))
	for k := range c.holidays {
		h[k] = struct{}{}
	}
	for k := range other.holidays {
		h[k] = struct{}{}
	}
	w := make(map[time.Weekday]struct{}, len(c.weekend)+len(other.weekend))
	for k := range c.weekend {
		w[k] = struct{}{}
	}
	for k := range other.weekend {
		w[k] = struct{}{}
	}
	return &Calendar{name: c.name + "+" + other.name, holidays: h, weekend: w}
}

// WithWeekend returns a copy of the calendar with the given weekdays
// added to the weekend rule. Extending the rule to cover all seven days
// fails with ErrAllWeekend.
func (c *Calendar) WithWeekend(days ...time.Weekday) (*Calendar, error) {
	out := c.clone()
	for _, d := range days {
		out.weekend[d] = struct{}{}
	}
	if len(out.weekend) == 7 {
		return nil, ErrAllWeekend
	}
	return out, nil
}

// WithHoliday returns a copy of the calendar with t added as a holiday.
func (c *Calendar) WithHoliday(t time.Time) *Calendar {
	out := c.clone()
	out.holidays[utils.FormatDate(t)] = struct{}{}
	return out
}

// WithoutHoliday returns a copy of the calendar with t removed from the
// holiday set.
func (c *Calendar) WithoutHoliday(t time.Time) *Calendar {
	out := c.clone()
	delete(out.holidays, utils.FormatDate(t))
	return out
}

func (c *Calendar) clone() *Calendar {
	h := make(map[string]struct{}, len(c.holidays))
	for k := range c.holidays {
		h[k] = struct{}{}
	}
	w := make(map[time.Weekday]struct{}, len(c.weekend))
	for k := range c.weekend {
		w[k] = struct{}{}
	}
	return &Calendar{name: c.name, holidays: h, weekend: w}
}

// LastBusinessDayOfMonth returns the last business day of the month
// containing t.
func (c *Calendar) LastBusinessDayOfMonth(t time.Time) time.Time {
	return c.PreviousBusinessDay(utils.EndOfMonth(t))
}

// IsEndOfMonth reports whether t is the last business day of its month.
func (c *Calendar) IsEndOfMonth(t time.Time) bool {
	return t.Equal(c.LastBusinessDayOfMonth(t))
}

// Default returns a weekend-only calendar (Saturday/Sunday, no holidays).
func Default() *Calendar {
	return MustNew("default", nil)
}
