package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/qfdate/utils"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := utils.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, utils.Date(2024, time.February, 29), d)

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "20240229", "2024-2-9"} {
		_, err := utils.ParseDate(bad)
		assert.ErrorIs(t, err, utils.ErrInvalidDate, "input %q", bad)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, utils.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, utils.DaysInMonth(2025, time.February))
	assert.Equal(t, 31, utils.DaysInMonth(2024, time.December))
	assert.Equal(t, 30, utils.DaysInMonth(2024, time.April))
}

func TestLeapYears(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsLeapYear(2024))
	assert.True(t, utils.IsLeapYear(2000))
	assert.False(t, utils.IsLeapYear(1900))
	assert.False(t, utils.IsLeapYear(2025))
	assert.Equal(t, 366, utils.DaysInYear(2024))
	assert.Equal(t, 365, utils.DaysInYear(2025))
}

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from   time.Time
		months int
		want   time.Time
	}{
		{utils.Date(2024, time.January, 31), 1, utils.Date(2024, time.February, 29)},
		{utils.Date(2025, time.January, 31), 1, utils.Date(2025, time.February, 28)},
		{utils.Date(2024, time.January, 31), 3, utils.Date(2024, time.April, 30)},
		{utils.Date(2024, time.March, 15), 1, utils.Date(2024, time.April, 15)},
		{utils.Date(2024, time.March, 31), -1, utils.Date(2024, time.February, 29)},
		{utils.Date(2024, time.February, 29), 12, utils.Date(2025, time.February, 28)},
		{utils.Date(2024, time.May, 31), 0, utils.Date(2024, time.May, 31)},
	}
	for _, c := range cases {
		got := utils.AddMonths(c.from, c.months)
		assert.Equal(t, c.want, got, "%s + %dM", utils.FormatDate(c.from), c.months)
	}
}

func TestEndOfMonthHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, utils.Date(2024, time.February, 29), utils.EndOfMonth(utils.Date(2024, time.February, 1)))
	assert.Equal(t, utils.Date(2024, time.December, 31), utils.EndOfMonth(utils.Date(2024, time.December, 25)))
	assert.True(t, utils.IsLastDayOfFebruary(utils.Date(2024, time.February, 29)))
	assert.False(t, utils.IsLastDayOfFebruary(utils.Date(2024, time.February, 28)))
	assert.True(t, utils.IsLastDayOfFebruary(utils.Date(2025, time.February, 28)))
}

func TestThirdWednesday(t *testing.T) {
	t.Parallel()

	// March 2024: Wednesdays fall on 6, 13, 20, 27.
	got := utils.ThirdWednesday(utils.Date(2024, time.March, 1))
	assert.Equal(t, utils.Date(2024, time.March, 20), got)
	assert.Equal(t, got, utils.ThirdWednesday(got))

	// June 2025: Wednesdays fall on 4, 11, 18, 25.
	assert.Equal(t, utils.Date(2025, time.June, 18), utils.ThirdWednesday(utils.Date(2025, time.June, 30)))
}

func TestSortDatesAndDays(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		utils.Date(2025, time.March, 1),
		utils.Date(2024, time.January, 1),
		utils.Date(2024, time.June, 15),
	}
	utils.SortDates(dates)
	assert.Equal(t, utils.Date(2024, time.January, 1), dates[0])
	assert.Equal(t, utils.Date(2025, time.March, 1), dates[2])

	assert.Equal(t, 366.0, utils.Days(utils.Date(2024, time.January, 1), utils.Date(2025, time.January, 1)))
}
