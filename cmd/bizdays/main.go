// Command bizdays reports the business days and accrual fractions
// between two dates under a market calendar.
//
//	bizdays -start 2025-01-31 -end 2025-07-31 -market TARGET -dc ACT/360
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/daycount"
	"github.com/meenmo/qfdate/marketdata"
	"github.com/meenmo/qfdate/utils"
)

func main() {
	startStr := flag.String("start", "", "Start date in YYYY-MM-DD format")
	endStr := flag.String("end", "", "End date in YYYY-MM-DD format")
	market := flag.String("market", "", "Bundled market calendar: KRX, US, TARGET (empty = weekends only)")
	dcStr := flag.String("dc", "ACT/365F", "Day count convention (e.g. ACT/360, ACT/365F, 30/360)")
	flag.Parse()

	start, err := utils.ParseDate(*startStr)
	if err != nil {
		log.Fatal(err)
	}
	end, err := utils.ParseDate(*endStr)
	if err != nil {
		log.Fatal(err)
	}
	conv, err := daycount.ParseConvention(*dcStr)
	if err != nil {
		log.Fatal(err)
	}

	cal := calendar.Default()
	if *market != "" {
		cal, err = marketdata.Bundled(*market)
		if err != nil {
			log.Fatal(err)
		}
	}

	businessDays := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if cal.IsBusinessDay(d) {
			businessDays++
		}
	}

	frac, err := daycount.Fraction(conv, start, end, &daycount.Options{Calendar: cal, Maturity: end})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Calendar:       %s\n", cal.Name())
	fmt.Printf("Calendar days:  %.0f\n", utils.Days(start, end))
	fmt.Printf("Business days:  %d\n", businessDays)
	fmt.Printf("%s fraction: %.10f\n", conv, frac)
}
