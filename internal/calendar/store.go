// Package calendar reads the Q-signup schedule from the region's MySQL
// store. The schema is owned by the qsignups Slack app; this package only
// queries it.
package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Entry is one scheduled workout: the AO, its date, any special event, and
// the Q who signed up (nil when the slot is open).
type Entry struct {
	AO      string  `json:"ao"`
	Date    string  `json:"date"`
	Special string  `json:"special"`
	Q       *string `json:"q"`
}

// Store queries the Q-signup tables.
type Store struct {
	db *sql.DB
}

// Open connects to the MySQL store and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is empty")
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(8)
	db.SetConnMaxLifetime(5 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return &Store{db: db}, nil
}

// NewStore wraps an existing handle. Used by tests.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

const eventsQuery = `
SELECT ao.ao_display_name, qm.event_date, qm.event_special, qm.q_pax_name
FROM qsignups_aos ao
LEFT JOIN qsignups_master qm ON (ao.ao_channel_id = qm.ao_channel_id)
WHERE qm.team_id = ? AND qm.event_date >= ? AND qm.event_date <= ?
ORDER BY qm.event_date ASC;`

// Events returns the schedule for a team between two dates, ordered by date
// ascending. NULL columns degrade per entry instead of failing the query:
// a missing AO or date renders as "ERROR", a missing special as "", and a
// missing Q stays nil.
func (s *Store) Events(ctx context.Context, teamID, startDate, endDate string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, eventsQuery, teamID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var ao, special sql.NullString
		var date sql.NullTime
		var q sql.NullString
		if err := rows.Scan(&ao, &date, &special, &q); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}

		entry := Entry{AO: "ERROR", Date: "ERROR"}
		if ao.Valid {
			entry.AO = ao.String
		}
		if date.Valid {
			entry.Date = date.Time.Format("2006-01-02")
		}
		if special.Valid {
			entry.Special = special.String
		}
		if q.Valid {
			entry.Q = &q.String
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read event rows: %w", err)
	}

	return entries, nil
}
