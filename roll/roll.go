// Package roll resolves dates that land on non-business days to nearby
// business days under market roll conventions.
package roll

import (
	"fmt"
	"time"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/utils"
)

// Rule identifies a roll convention. The set is closed: Adjust
// dispatches with an exhaustive switch and rejects unknown values.
type Rule int

const (
	// Unadjusted leaves the date as is.
	Unadjusted Rule = iota
	// Following rolls forward to the next business day.
	Following
	// Preceding rolls backward to the previous business day.
	Preceding
	// ModifiedFollowing rolls forward unless that crosses into the next
	// month, in which case it rolls backward instead.
	ModifiedFollowing
	// ModifiedPreceding rolls backward unless that crosses into the
	// previous month, in which case it rolls forward instead.
	ModifiedPreceding
	// ModifiedFollowingEOM moves to the last business day of the month.
	ModifiedFollowingEOM
	// UnadjustedEOM moves to the last calendar day of the month.
	UnadjustedEOM
	// IMM moves to the third Wednesday of the month.
	IMM
	// CADIMM moves to the Canadian IMM date, two days before IMM.
	CADIMM
)

var ruleNames = map[Rule]string{
	Unadjusted:           "NONE",
	Following:            "FOLLOWING",
	Preceding:            "PRECEDING",
	ModifiedFollowing:    "MODFOLLOWING",
	ModifiedPreceding:    "MODPRECEDING",
	ModifiedFollowingEOM: "MODFOLLOWING_EOM",
	UnadjustedEOM:        "EOM",
	IMM:                  "IMM",
	CADIMM:               "CAD_IMM",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule maps a convention name like "MODFOLLOWING" to its Rule.
func ParseRule(s string) (Rule, error) {
	for r, name := range ruleNames {
		if s == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("roll: unknown rule %q", s)
}

// Adjust resolves date under the given rule and calendar. A nil
// calendar means weekends only. Adjust is idempotent: feeding its
// result back in with the same rule and calendar is a no-op.
func Adjust(date time.Time, rule Rule, cal *calendar.Calendar) (time.Time, error) {
	if cal == nil {
		cal = calendar.Default()
	}
	switch rule {
	case Unadjusted:
		return date, nil
	case Following:
		return cal.NextBusinessDay(date), nil
	case Preceding:
		return cal.PreviousBusinessDay(date), nil
	case ModifiedFollowing:
		next := cal.NextBusinessDay(date)
		if next.Month() != date.Month() {
			return cal.PreviousBusinessDay(date), nil
		}
		return next, nil
	case ModifiedPreceding:
		prev := cal.PreviousBusinessDay(date)
		if prev.Month() != date.Month() {
			return cal.NextBusinessDay(date), nil
		}
		return prev, nil
	case ModifiedFollowingEOM:
		return cal.LastBusinessDayOfMonth(date), nil
	case UnadjustedEOM:
		return utils.EndOfMonth(date), nil
	case IMM:
		return utils.ThirdWednesday(date), nil
	case CADIMM:
		return utils.ThirdWednesday(date).AddDate(0, 0, -2), nil
	default:
		return time.Time{}, fmt.Errorf("roll: unknown rule %d", int(rule))
	}
}
