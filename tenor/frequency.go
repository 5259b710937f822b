package tenor

import "fmt"

// Frequency counts events per year. The numeric values are the annual
// event counts, so 12/int(f) is the period length in months for the
// monthly-divisible frequencies.
type Frequency int

const (
	Once       Frequency = 0
	Annual     Frequency = 1
	Semiannual Frequency = 2
	Quarterly  Frequency = 4
	Bimonthly  Frequency = 6
	Monthly    Frequency = 12
	Biweekly   Frequency = 26
	Weekly     Frequency = 52
	Daily      Frequency = 365
)

// Tenor converts a frequency into the tenor of one period. Once maps to
// the zero tenor.
func (f Frequency) Tenor() (Tenor, error) {
	switch f {
	case Once:
		return Tenor{}, nil
	case Annual:
		return Tenor{Years: 1}, nil
	case Semiannual, Quarterly, Bimonthly, Monthly:
		return Tenor{Months: 12 / int(f)}, nil
	case Biweekly, Weekly:
		return Tenor{Weeks: 52 / int(f)}, nil
	case Daily:
		return Tenor{Days: 1}, nil
	default:
		return Tenor{}, fmt.Errorf("tenor: unknown frequency %d", int(f))
	}
}

// PeriodMonths returns the period length in months, or 0 when the
// frequency is not a whole number of months.
func (f Frequency) PeriodMonths() int {
	switch f {
	case Annual, Semiannual, Quarterly, Bimonthly, Monthly:
		return 12 / int(f)
	default:
		return 0
	}
}
