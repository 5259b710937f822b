// Command holidaysync pulls a market's holiday table from Postgres and
// writes the YAML calendar file used by the other tools.
//
// Configuration comes from the environment:
//
//	HOLIDAYSYNC_DATABASE_URL  postgres DSN (required)
//	HOLIDAYSYNC_MARKET        market name, e.g. KRX (required)
//	HOLIDAYSYNC_OUT           output path, default <market>.yaml
//	HOLIDAYSYNC_TIMEOUT       overall timeout, default 30s
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/meenmo/qfdate/marketdata"
)

type config struct {
	DatabaseURL string        `envconfig:"DATABASE_URL" required:"true"`
	Market      string        `envconfig:"MARKET" required:"true"`
	Out         string        `envconfig:"OUT"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	var cfg config
	if err := envconfig.Process("holidaysync", &cfg); err != nil {
		logger.Fatal().Err(err).Msg("bad configuration")
	}
	if cfg.Out == "" {
		cfg.Out = strings.ToLower(cfg.Market) + ".yaml"
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	store, err := marketdata.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to holiday store")
	}
	defer store.Close()

	cal, err := store.Calendar(ctx, cfg.Market)
	if err != nil {
		logger.Fatal().Err(err).Str("market", cfg.Market).Msg("load holidays")
	}
	holidays := cal.Holidays()
	if len(holidays) == 0 {
		logger.Warn().Str("market", cfg.Market).Msg("no holidays in store; writing weekend-only calendar")
	}

	if err := marketdata.WriteFile(cfg.Out, cal); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Out).Msg("write calendar file")
	}
	logger.Info().
		Str("market", cfg.Market).
		Str("path", cfg.Out).
		Int("holidays", len(holidays)).
		Msg("calendar written")
}
