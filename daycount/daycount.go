// Package daycount implements market day-count conventions: pure
// functions turning a date span into a year fraction for interest
// accrual.
package daycount

import (
	"errors"
	"fmt"
	"time"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/utils"
)

// Convention identifies a day-count rule. The set is closed: Fraction
// dispatches with an exhaustive switch and rejects unknown values.
type Convention int

const (
	// Act360 divides actual days by 360.
	Act360 Convention = iota
	// Act365Fixed divides actual days by a fixed 365.
	Act365Fixed
	// Act365L divides actual days excluding Feb 29 by 365.
	Act365L
	// ActActISDA splits the span at year boundaries, each year's portion
	// over that year's actual length (365 or 366).
	ActActISDA
	// ActActAFB is the French bond market (AFB) Actual/Actual method.
	ActActAFB
	// Thirty360 is 30/360 Bond Basis: a 31st start becomes 30, and a
	// 31st end becomes 30 only when the start day is 30 or 31.
	Thirty360
	// Thirty360US adds the US end-of-February rules on top of Bond Basis.
	Thirty360US
	// ThirtyE360 is 30E/360 (Eurobond): both 31sts become 30.
	ThirtyE360
	// ThirtyE360ISDA is 30E/360 (ISDA); it needs the instrument maturity
	// to decide the end-of-February rule, supplied via Options.
	ThirtyE360ISDA
	// Business252 counts business days over 252, and needs a Calendar
	// supplied via Options.
	Business252
)

var conventionNames = map[Convention]string{
	Act360:         "ACT/360",
	Act365Fixed:    "ACT/365F",
	Act365L:        "ACT/365L",
	ActActISDA:     "ACT/ACT",
	ActActAFB:      "ACT/ACT AFB",
	Thirty360:      "30/360",
	Thirty360US:    "30/360 US",
	ThirtyE360:     "30E/360",
	ThirtyE360ISDA: "30E/360 ISDA",
	Business252:    "BUS/252",
}

func (c Convention) String() string {
	if s, ok := conventionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

// ParseConvention maps a market name like "ACT/360" or "30E/360" to its
// Convention. The match is exact.
func ParseConvention(s string) (Convention, error) {
	for c, name := range conventionNames {
		if s == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("daycount: unknown convention %q", s)
}

// ErrInvalidRange is returned when end precedes start. Accrual fractions
// are non-negative under every convention here.
var ErrInvalidRange = errors.New("daycount: end date must not be before start date")

// Options carries the extra context some conventions require.
type Options struct {
	// Maturity is the instrument's final maturity, required by ThirtyE360ISDA.
	Maturity time.Time
	// Calendar supplies business days, required by Business252.
	Calendar *calendar.Calendar
}

// Fraction computes the year fraction from start to end under conv.
// opts may be nil for conventions that need no extra context.
func Fraction(conv Convention, start, end time.Time, opts *Options) (float64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			utils.FormatDate(start), utils.FormatDate(end))
	}

	switch conv {
	case Act360:
		return utils.Days(start, end) / 360.0, nil
	case Act365Fixed:
		return utils.Days(start, end) / 365.0, nil
	case Act365L:
		return act365L(start, end), nil
	case ActActISDA:
		return actActISDA(start, end), nil
	case ActActAFB:
		return actActAFB(start, end), nil
	case Thirty360:
		return thirty360(start, end), nil
	case Thirty360US:
		return thirty360US(start, end), nil
	case ThirtyE360:
		return thirtyE360(start, end), nil
	case ThirtyE360ISDA:
		if opts == nil || opts.Maturity.IsZero() {
			return 0, errors.New("daycount: maturity date required for 30E/360 ISDA")
		}
		return thirtyE360ISDA(start, end, opts.Maturity), nil
	case Business252:
		if opts == nil || opts.Calendar == nil {
			return 0, errors.New("daycount: calendar required for BUS/252")
		}
		return business252(start, end, opts.Calendar), nil
	default:
		return 0, fmt.Errorf("daycount: unknown convention %d", int(conv))
	}
}

// act365L counts actual days excluding every Feb 29 over 365.
func act365L(start, end time.Time) float64 {
	days := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if !(d.Month() == time.February && d.Day() == 29) {
			days++
		}
	}
	return float64(days) / 365.0
}

// actActISDA uses the closed form
//
//	(y2-y1) + days(jan1(y2), end)/len(y2) - days(jan1(y1), start)/len(y1)
//
// which equals the per-year-portion sum over 365 or 366.
func actActISDA(start, end time.Time) float64 {
	startYearBegin := utils.Date(start.Year(), time.January, 1)
	endYearBegin := utils.Date(end.Year(), time.January, 1)
	return float64(end.Year()-start.Year()) +
		utils.Days(endYearBegin, end)/float64(utils.DaysInYear(end.Year())) -
		utils.Days(startYearBegin, start)/float64(utils.DaysInYear(start.Year()))
}

func actActAFB(start, end time.Time) float64 {
	days := utils.Days(start, end)
	denominator := 365.0
	multiYear := days > 366.0

	if !multiYear {
		switch {
		case !utils.IsLeapYear(start.Year()) && !utils.IsLeapYear(end.Year()):
			multiYear = days > 365.0
		default:
			leapYear := end.Year()
			if utils.IsLeapYear(start.Year()) {
				leapYear = start.Year()
			}
			leapDay := utils.Date(leapYear, time.February, 29)
			if !start.After(leapDay) && !leapDay.After(end) {
				denominator = 366.0
			} else {
				multiYear = days > 365.0
			}
		}
	}

	if !multiYear {
		return days / denominator
	}

	// Strip the last whole year off the end and recurse, anchoring
	// February ends so the leap day is counted in the right portion.
	var prevYearEnd time.Time
	switch {
	case end.Month() == time.February && end.Day() == 29:
		prevYearEnd = utils.Date(end.Year()-1, time.February, 28)
	case end.Month() == time.February && end.Day() == 28 && utils.IsLeapYear(end.Year()-1):
		prevYearEnd = utils.Date(end.Year()-1, time.February, 29)
	default:
		prevYearEnd = utils.Date(end.Year()-1, end.Month(), end.Day())
	}
	return actActAFB(start, prevYearEnd) + actActAFB(prevYearEnd, end)
}

func thirty360Numerator(start, end time.Time, d1, d2 int) float64 {
	return float64(360*(end.Year()-start.Year()) +
		30*(int(end.Month())-int(start.Month())) +
		(d2 - d1))
}

// thirty360 is plain 30/360 Bond Basis, without February handling.
func thirty360(start, end time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return thirty360Numerator(start, end, d1, d2) / 360.0
}

// thirty360US is the 30/360 Bond Basis rule with US end-of-February
// handling: both dates on the last day of February set d2 to 30; a start
// on the last day of February sets d1 to 30; then the usual 31st rules.
func thirty360US(start, end time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if utils.IsLastDayOfFebruary(start) && utils.IsLastDayOfFebruary(end) {
		d2 = 30
	}
	if utils.IsLastDayOfFebruary(start) {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	if d1 == 31 {
		d1 = 30
	}
	return thirty360Numerator(start, end, d1, d2) / 360.0
}

func thirtyE360(start, end time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 {
		d2 = 30
	}
	return thirty360Numerator(start, end, d1, d2) / 360.0
}

// thirtyE360ISDA treats a last-of-February start as 30, and a
// last-of-February end as 30 unless the end is the final maturity.
func thirtyE360ISDA(start, end, maturity time.Time) float64 {
	d1, d2 := start.Day(), end.Day()
	if utils.IsLastDayOfFebruary(start) || d1 == 31 {
		d1 = 30
	}
	if utils.IsLastDayOfFebruary(end) {
		if !end.Equal(maturity) {
			d2 = 30
		}
	} else if d2 == 31 {
		d2 = 30
	}
	return thirty360Numerator(start, end, d1, d2) / 360.0
}

// business252 counts business days in [start, end] over 252 trading days
// per year. Both endpoints are included in the scan, matching the
// Brazilian BUS/252 definition.
func business252(start, end time.Time, cal *calendar.Calendar) float64 {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if cal.IsBusinessDay(d) {
			days++
		}
	}
	return float64(days) / 252.0
}
