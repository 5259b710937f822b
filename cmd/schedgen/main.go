// Command schedgen prints a coupon schedule between two dates.
//
//	schedgen -start 2025-01-31 -end 2027-01-31 -freq 6M -roll MODFOLLOWING -market KRX -stub back
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/meenmo/qfdate/calendar"
	"github.com/meenmo/qfdate/marketdata"
	"github.com/meenmo/qfdate/roll"
	"github.com/meenmo/qfdate/schedule"
	"github.com/meenmo/qfdate/tenor"
	"github.com/meenmo/qfdate/utils"
)

func main() {
	startStr := flag.String("start", "", "Start date in YYYY-MM-DD format")
	endStr := flag.String("end", "", "End date in YYYY-MM-DD format")
	freqStr := flag.String("freq", "3M", "Period frequency as a tenor (e.g. 1M, 3M, 6M, 1Y)")
	rollStr := flag.String("roll", "MODFOLLOWING", "Roll convention: NONE, FOLLOWING, PRECEDING, MODFOLLOWING, MODPRECEDING")
	market := flag.String("market", "", "Bundled market calendar: KRX, US, TARGET (empty = weekends only)")
	calFile := flag.String("calfile", "", "YAML holiday calendar file (overrides -market)")
	stubStr := flag.String("stub", "back", "Stub position: front or back")
	flag.Parse()

	start, err := utils.ParseDate(*startStr)
	if err != nil {
		log.Fatal(err)
	}
	end, err := utils.ParseDate(*endStr)
	if err != nil {
		log.Fatal(err)
	}
	freq, err := tenor.Parse(*freqStr)
	if err != nil {
		log.Fatal(err)
	}
	rule, err := roll.ParseRule(*rollStr)
	if err != nil {
		log.Fatal(err)
	}

	cal := calendar.Default()
	switch {
	case *calFile != "":
		cal, err = marketdata.LoadFile(*calFile)
	case *market != "":
		cal, err = marketdata.Bundled(*market)
	}
	if err != nil {
		log.Fatal(err)
	}

	var stub schedule.Stub
	switch strings.ToLower(*stubStr) {
	case "back":
		stub = schedule.StubBack
	case "front":
		stub = schedule.StubFront
	default:
		log.Fatalf("unknown stub %q (want front or back)", *stubStr)
	}

	dates, err := schedule.Generate(start, end, freq, rule, cal, stub)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Schedule %s -> %s, every %s, %s, calendar %s\n",
		utils.FormatDate(start), utils.FormatDate(end), freq, rule, cal.Name())
	for i, d := range dates {
		fmt.Printf("%3d  %s  %s\n", i, utils.FormatDate(d), d.Weekday())
	}
}
