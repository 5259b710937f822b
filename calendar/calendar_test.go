package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/utils"
)

func testCalendar(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.New("TEST", []time.Time{
		utils.Date(2025, time.January, 1),
		utils.Date(2025, time.May, 1),
		utils.Date(2025, time.May, 1), // duplicate, must be deduped
		utils.Date(2025, time.December, 25),
	})
	require.NoError(t, err)
	return cal
}

func TestNewRejectsAllWeekend(t *testing.T) {
	t.Parallel()

	_, err := calendar.New("broken", nil,
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday)
	require.ErrorIs(t, err, calendar.ErrAllWeekend)
}

func TestNewDedupesHolidays(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)
	assert.Len(t, cal.Holidays(), 3)
}

func TestIsBusinessDay(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)

	// 2025-05-01 is a Thursday and a holiday.
	assert.False(t, cal.IsBusinessDay(utils.Date(2025, time.May, 1)))
	assert.True(t, cal.IsHoliday(utils.Date(2025, time.May, 1)))
	assert.False(t, cal.IsWeekend(utils.Date(2025, time.May, 1)))

	// 2025-05-03 is a Saturday.
	assert.False(t, cal.IsBusinessDay(utils.Date(2025, time.May, 3)))
	assert.True(t, cal.IsWeekend(utils.Date(2025, time.May, 3)))
	assert.False(t, cal.IsHoliday(utils.Date(2025, time.May, 3)))

	// 2025-05-02 is an ordinary Friday.
	assert.True(t, cal.IsBusinessDay(utils.Date(2025, time.May, 2)))
}

// Every date is either a business day or a weekend/holiday, never both.
func TestBusinessDayPartition(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)
	for d := utils.Date(2025, time.January, 1); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		biz := cal.IsBusinessDay(d)
		off := cal.IsWeekend(d) || cal.IsHoliday(d)
		if biz == off {
			t.Fatalf("%s: IsBusinessDay=%v but weekend/holiday=%v", utils.FormatDate(d), biz, off)
		}
	}
}

func TestBusinessDayNavigation(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)

	// Already a business day: unchanged in both directions.
	fri := utils.Date(2025, time.May, 2)
	assert.Equal(t, fri, cal.NextBusinessDay(fri))
	assert.Equal(t, fri, cal.PreviousBusinessDay(fri))

	// Thu May 1 holiday, Fri May 2 business, Sat/Sun weekend.
	assert.Equal(t, fri, cal.NextBusinessDay(utils.Date(2025, time.May, 1)))
	assert.Equal(t, fri, cal.PreviousBusinessDay(utils.Date(2025, time.May, 4)))
	assert.Equal(t, utils.Date(2025, time.April, 30), cal.PreviousBusinessDay(utils.Date(2025, time.May, 1)))
}

func TestAddBusinessDays(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)

	// Wed Apr 30 + 1 business day skips the May 1 holiday.
	got := cal.AddBusinessDays(utils.Date(2025, time.April, 30), 1, true)
	assert.Equal(t, utils.Date(2025, time.May, 2), got)

	// Fri May 2 + 1 business day skips the weekend.
	got = cal.AddBusinessDays(utils.Date(2025, time.May, 2), 1, true)
	assert.Equal(t, utils.Date(2025, time.May, 5), got)

	// Negative counts walk backward.
	got = cal.AddBusinessDays(utils.Date(2025, time.May, 5), -1, true)
	assert.Equal(t, utils.Date(2025, time.May, 2), got)

	// Zero days settles a non-business start per adjustUp.
	sat := utils.Date(2025, time.May, 3)
	assert.Equal(t, utils.Date(2025, time.May, 5), cal.AddBusinessDays(sat, 0, true))
	assert.Equal(t, utils.Date(2025, time.May, 2), cal.AddBusinessDays(sat, 0, false))
}

func TestUnion(t *testing.T) {
	t.Parallel()

	a, err := calendar.New("A", []time.Time{utils.Date(2025, time.July, 4)})
	require.NoError(t, err)
	b, err := calendar.New("B", []time.Time{utils.Date(2025, time.July, 14)})
	require.NoError(t, err)

	u := a.Union(b)
	assert.Equal(t, "A+B", u.Name())
	assert.False(t, u.IsBusinessDay(utils.Date(2025, time.July, 4)))
	assert.False(t, u.IsBusinessDay(utils.Date(2025, time.July, 14)))
	assert.True(t, u.IsBusinessDay(utils.Date(2025, time.July, 15)))

	// Inputs are untouched.
	assert.True(t, a.IsBusinessDay(utils.Date(2025, time.July, 14)))
	assert.True(t, b.IsBusinessDay(utils.Date(2025, time.July, 4)))
}

func TestUnionMergesWeekendRules(t *testing.T) {
	t.Parallel()

	western, err := calendar.New("W", nil, time.Saturday, time.Sunday)
	require.NoError(t, err)
	gulf, err := calendar.New("G", nil, time.Friday, time.Saturday)
	require.NoError(t, err)

	u := western.Union(gulf)
	// 2025-06-06 is a Friday, 2025-06-08 a Sunday: both off in the union.
	assert.False(t, u.IsBusinessDay(utils.Date(2025, time.June, 6)))
	assert.False(t, u.IsBusinessDay(utils.Date(2025, time.June, 8)))
	assert.True(t, u.IsBusinessDay(utils.Date(2025, time.June, 9)))
}

func TestWithWeekend(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)
	fri := utils.Date(2025, time.May, 2)
	require.True(t, cal.IsBusinessDay(fri))

	fourDay, err := cal.WithWeekend(time.Friday)
	require.NoError(t, err)
	assert.False(t, fourDay.IsBusinessDay(fri))
	assert.True(t, cal.IsBusinessDay(fri), "original calendar must not change")

	_, err = fourDay.WithWeekend(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Sunday)
	require.ErrorIs(t, err, calendar.ErrAllWeekend)
}

func TestWithHoliday(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)
	d := utils.Date(2025, time.August, 15)

	withExtra := cal.WithHoliday(d)
	assert.False(t, withExtra.IsBusinessDay(d))
	assert.True(t, cal.IsBusinessDay(d), "original calendar must not change")

	removed := withExtra.WithoutHoliday(d)
	assert.True(t, removed.IsBusinessDay(d))
	assert.False(t, withExtra.IsBusinessDay(d))
}

func TestLastBusinessDayOfMonth(t *testing.T) {
	t.Parallel()

	cal := testCalendar(t)

	// 2025-08-31 is a Sunday, so the last business day is Fri Aug 29.
	got := cal.LastBusinessDayOfMonth(utils.Date(2025, time.August, 10))
	assert.Equal(t, utils.Date(2025, time.August, 29), got)
	assert.True(t, cal.IsEndOfMonth(got))
	assert.False(t, cal.IsEndOfMonth(utils.Date(2025, time.August, 10)))
}
