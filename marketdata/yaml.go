package marketdata

import (
	"fmt"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/utils"
)

// calendarFile is the YAML shape of a holiday calendar file:
//
//	name: KRX
//	weekend: [Saturday, Sunday]
//	holidays:
//	  - "2025-01-01"
//	  - "2025-01-27"
type calendarFile struct {
	Name     string   `yaml:"name"`
	Weekend  []string `yaml:"weekend,omitempty"`
	Holidays []string `yaml:"holidays"`
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// LoadFile reads a YAML holiday calendar file. An absent weekend list
// means Saturday/Sunday.
func LoadFile(path string) (*calendar.Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("marketdata: read %s: %w", path, err)
	}
	var f calendarFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("marketdata: parse %s: %w", path, err)
	}

	weekend := make([]time.Weekday, 0, len(f.Weekend))
	for _, name := range f.Weekend {
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("marketdata: %s: unknown weekday %q", path, name)
		}
		weekend = append(weekend, wd)
	}

	holidays := make([]time.Time, 0, len(f.Holidays))
	for _, s := range f.Holidays {
		d, err := utils.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("marketdata: %s: %w", path, err)
		}
		holidays = append(holidays, d)
	}
	return calendar.New(f.Name, holidays, weekend...)
}

// WriteFile writes a calendar to a YAML holiday calendar file readable
// by LoadFile. The weekend list is omitted; LoadFile restores the
// Saturday/Sunday default.
func WriteFile(path string, cal *calendar.Calendar) error {
	f := calendarFile{Name: cal.Name()}
	for _, d := range cal.Holidays() {
		f.Holidays = append(f.Holidays, utils.FormatDate(d))
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marketdata: marshal %s: %w", cal.Name(), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("marketdata: write %s: %w", path, err)
	}
	return nil
}
