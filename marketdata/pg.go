package marketdata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/meenmo/qfdate/calendar"
)

// Store loads holiday calendars from a Postgres table:
//
//	CREATE TABLE market_holidays (
//	    market  text NOT NULL,
//	    holiday date NOT NULL,
//	    PRIMARY KEY (market, holiday)
//	);
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("marketdata: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("marketdata: ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an existing database handle, e.g. one shared with the
// rest of an application.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Markets lists the distinct market names present in the store.
func (s *Store) Markets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT market FROM market_holidays ORDER BY market`)
	if err != nil {
		return nil, fmt.Errorf("marketdata: query markets: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("marketdata: scan market: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("marketdata: iterate markets: %w", err)
	}
	return out, nil
}

// Calendar builds the calendar for a market from its stored holidays.
// A market with no rows yields a weekend-only calendar, which is
// indistinguishable from a sparse year; callers wanting to detect
// missing markets should consult Markets first.
func (s *Store) Calendar(ctx context.Context, market string) (*calendar.Calendar, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT holiday FROM market_holidays WHERE market = $1 ORDER BY holiday`, market)
	if err != nil {
		return nil, fmt.Errorf("marketdata: query holidays for %s: %w", market, err)
	}
	defer rows.Close()

	var holidays []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("marketdata: scan holiday for %s: %w", market, err)
		}
		holidays = append(holidays, d.UTC().Truncate(24*time.Hour))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("marketdata: iterate holidays for %s: %w", market, err)
	}
	return calendar.New(market, holidays)
}
