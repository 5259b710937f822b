// Package tenor parses and applies market tenors: relative date offsets
// expressed in shorthand like "3M", "1Y6M" or "-2W". Tenor arithmetic is
// calendar-agnostic; business-day adjustment lives in package roll.
package tenor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/qfdate/utils"
)

// ErrInvalidTenor is returned for a malformed tenor spec: empty string,
// unknown unit, repeated unit, or a token without an integer amount.
var ErrInvalidTenor = errors.New("tenor: invalid tenor")

// Tenor is a structured date offset. Each component is signed and a
// Tenor is immutable once parsed.
type Tenor struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

// Parse reads a tenor spec: a concatenation of <signed-integer><unit>
// tokens with units Y, M, W, D (case-insensitive), in any order, each
// unit at most once. "1Y6M", "-3d" and "2w1D" are all valid.
func Parse(spec string) (Tenor, error) {
	s := strings.ToUpper(strings.TrimSpace(spec))
	if s == "" {
		return Tenor{}, fmt.Errorf("%w: empty spec", ErrInvalidTenor)
	}

	var t Tenor
	seen := map[byte]bool{}
	i := 0
	for i < len(s) {
		j := i
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i || j == i+1 && (s[i] == '+' || s[i] == '-') {
			return Tenor{}, fmt.Errorf("%w: %q: missing amount", ErrInvalidTenor, spec)
		}
		if j >= len(s) {
			return Tenor{}, fmt.Errorf("%w: %q: missing unit", ErrInvalidTenor, spec)
		}
		amount, err := strconv.Atoi(s[i:j])
		if err != nil {
			return Tenor{}, fmt.Errorf("%w: %q: %v", ErrInvalidTenor, spec, err)
		}

		unit := s[j]
		if seen[unit] {
			return Tenor{}, fmt.Errorf("%w: %q: repeated unit %c", ErrInvalidTenor, spec, unit)
		}
		seen[unit] = true
		switch unit {
		case 'Y':
			t.Years = amount
		case 'M':
			t.Months = amount
		case 'W':
			t.Weeks = amount
		case 'D':
			t.Days = amount
		default:
			return Tenor{}, fmt.Errorf("%w: %q: unknown unit %c", ErrInvalidTenor, spec, unit)
		}
		i = j + 1
	}
	return t, nil
}

// MustParse is Parse for static conventions; it panics on a bad spec.
func MustParse(spec string) Tenor {
	t, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return t
}

// Apply adds the tenor to a date: years and months first (with
// end-of-month clamping, so Jan 31 + 1M is Feb 28/29), then weeks and
// days. Applying years/months before days keeps month-end arithmetic
// unambiguous.
func (t Tenor) Apply(from time.Time) time.Time {
	d := utils.AddMonths(from, 12*t.Years+t.Months)
	return d.AddDate(0, 0, 7*t.Weeks+t.Days)
}

// IsZero reports whether every component is zero (the identity tenor).
func (t Tenor) IsZero() bool {
	return t.Years == 0 && t.Months == 0 && t.Weeks == 0 && t.Days == 0
}

// Neg returns the tenor with every component negated.
func (t Tenor) Neg() Tenor {
	return Tenor{Years: -t.Years, Months: -t.Months, Weeks: -t.Weeks, Days: -t.Days}
}

// Add returns the component-wise sum of two tenors.
func (t Tenor) Add(o Tenor) Tenor {
	return Tenor{
		Years:  t.Years + o.Years,
		Months: t.Months + o.Months,
		Weeks:  t.Weeks + o.Weeks,
		Days:   t.Days + o.Days,
	}
}

// Mul returns the tenor scaled by n.
func (t Tenor) Mul(n int) Tenor {
	return Tenor{Years: n * t.Years, Months: n * t.Months, Weeks: n * t.Weeks, Days: n * t.Days}
}

// String renders the tenor in compact market form ("1Y6M", "-3D").
// The zero tenor renders as "0D".
func (t Tenor) String() string {
	if t.IsZero() {
		return "0D"
	}
	var b strings.Builder
	if t.Years != 0 {
		fmt.Fprintf(&b, "%dY", t.Years)
	}
	if t.Months != 0 {
		fmt.Fprintf(&b, "%dM", t.Months)
	}
	if t.Weeks != 0 {
		fmt.Fprintf(&b, "%dW", t.Weeks)
	}
	if t.Days != 0 {
		fmt.Fprintf(&b, "%dD", t.Days)
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler so tenors embed in
// YAML and JSON configuration.
func (t Tenor) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tenor) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
