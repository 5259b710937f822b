package utils

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const layout = "2006-01-02"

// ErrInvalidDate is returned for an impossible calendar date, such as a
// thirteenth month or a February 30.
var ErrInvalidDate = errors.New("utils: invalid date")

// Date builds a calendar date at UTC midnight, the representation used
// throughout this module.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate converts YYYY-MM-DD to a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layout)
}

// SortDates sorts a slice of time.Time in ascending order.
func SortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}

// Days returns the number of calendar days between two dates.
func Days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// DaysInMonth returns the length of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has a Feb 29.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// EndOfMonth returns the last calendar day of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// BeginningOfMonth returns the first calendar day of the month containing t.
func BeginningOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// IsLastDayOfFebruary reports whether t is Feb 28 (non-leap) or Feb 29.
func IsLastDayOfFebruary(t time.Time) bool {
	next := t.AddDate(0, 0, 1)
	return next.Month() == time.March && next.Day() == 1
}

// ThirdWednesday returns the third Wednesday of the month containing t,
// the IMM futures date for that month.
func ThirdWednesday(t time.Time) time.Time {
	d := BeginningOfMonth(t)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 14)
}

// AddMonths behaves like Excel's EDATE: adding months to a day-of-month
// that does not exist in the target month clamps to that month's last day
// instead of letting Go normalize into the following month.
func AddMonths(t time.Time, months int) time.Time {
	d := t.AddDate(0, months, 0)
	want := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	if d.Month() == want.Month() {
		return d
	}
	return EndOfMonth(want)
}
