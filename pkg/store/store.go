// Package store manages all SQLite persistence for timeperiod.
//
// Each row of the entries table is one labelled period in a named calendar.
// Endpoints are stored as RFC3339 text keeping their UTC offset, so a
// period reloads with the wall-clock values it was rounded in. Integer
// columns carry the sort keys: start_unix for the start and
// created_unix_nano for creation order among equal starts.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daviddao/timeperiod/pkg/clock"
	"github.com/daviddao/timeperiod/pkg/model"
	"github.com/daviddao/timeperiod/pkg/period"

	_ "modernc.org/sqlite"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidCalendar = errors.New("calendar name must not be empty")
)

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db    *sql.DB
	log   *zap.Logger
	clock clock.Clock
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for retry and migration diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source for created_at stamps.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string, opts ...Option) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db, log: zap.NewNop(), clock: clock.System{}}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.log.Debug("store opened", zap.String("path", path))
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// retryOnContention runs a store write under defaultWritePolicy and logs
// every retry. All store writes go through it.
func (s *Store) retryOnContention(op string, fn func() error) error {
	attempt := 0
	err := retryWrite(defaultWritePolicy, fn, func(err error, delay time.Duration) {
		attempt++
		s.log.Debug("transient sqlite error, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))
	})
	if err != nil {
		s.log.Warn("store write failed", zap.String("op", op), zap.Error(err))
	}
	return err
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id         TEXT PRIMARY KEY,
		calendar   TEXT NOT NULL,
		label      TEXT NOT NULL DEFAULT '',
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		start_unix INTEGER NOT NULL,
		precision  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		created_unix_nano INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	if err := s.addColumn("entries", "created_unix_nano", "INTEGER NOT NULL DEFAULT 0"); err != nil {
		return err
	}
	_, err := s.db.Exec(`
	DROP INDEX IF EXISTS idx_entries_calendar;
	CREATE INDEX IF NOT EXISTS idx_entries_order ON entries(calendar, start_unix, created_unix_nano);
	`)
	return err
}

// addColumn adds a column to databases created before it existed.
func (s *Store) addColumn(table, column, decl string) error {
	rows, err := s.db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if name == column {
			return nil
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()
	s.log.Info("adding column", zap.String("table", table), zap.String("column", column))
	_, err = s.db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, decl))
	return err
}

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

// AddEntry stores p in calendar under a fresh ID.
func (s *Store) AddEntry(calendar, label string, p period.Period) (*model.Entry, error) {
	calendar = strings.TrimSpace(calendar)
	if calendar == "" {
		return nil, ErrInvalidCalendar
	}
	e := model.Entry{
		ID:        uuid.NewString(),
		Calendar:  calendar,
		Label:     label,
		Period:    p,
		CreatedAt: s.clock.Now().UTC(),
	}
	err := s.retryOnContention("add entry", func() error {
		_, err := s.db.Exec(
			`INSERT INTO entries (id, calendar, label, start_at, end_at, start_unix, precision, created_at, created_unix_nano)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Calendar, e.Label,
			p.Start().Format(time.RFC3339Nano), p.End().Format(time.RFC3339Nano), p.Start().Unix(),
			p.Precision().String(), e.CreatedAt.Format(time.RFC3339Nano), e.CreatedAt.UnixNano(),
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEntry retrieves an entry by ID.
func (s *Store) GetEntry(id string) (*model.Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, calendar, label, start_at, end_at, precision, created_at
		 FROM entries WHERE id = ?`, id,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// RemoveEntry deletes an entry by ID.
func (s *Store) RemoveEntry(id string) error {
	var n int64
	err := s.retryOnContention("remove entry", func() error {
		res, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("entry %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListEntries returns the entries of calendar ordered by start, then by
// creation.
func (s *Store) ListEntries(calendar string) ([]model.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, calendar, label, start_at, end_at, precision, created_at
		 FROM entries WHERE calendar = ?
		 ORDER BY start_unix ASC, created_unix_nano ASC, id ASC`, calendar,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Collection returns the periods of calendar in ListEntries order.
func (s *Store) Collection(calendar string) (period.Collection, error) {
	entries, err := s.ListEntries(calendar)
	if err != nil {
		return nil, err
	}
	return model.Periods(entries), nil
}

// ListCalendars summarizes every calendar that holds at least one entry,
// ordered by name.
func (s *Store) ListCalendars() ([]model.CalendarSummary, error) {
	rows, err := s.db.Query(
		`SELECT calendar, COUNT(*) FROM entries GROUP BY calendar ORDER BY calendar`,
	)
	if err != nil {
		return nil, err
	}
	var out []model.CalendarSummary
	for rows.Next() {
		var cs model.CalendarSummary
		if err := rows.Scan(&cs.Name, &cs.Count); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range out {
		c, err := s.Collection(out[i].Name)
		if err != nil {
			return nil, err
		}
		if b, ok := c.Boundaries(); ok {
			out[i].Bounds = &b
		}
	}
	return out, nil
}

// ClearCalendar deletes every entry of calendar and returns how many were
// removed.
func (s *Store) ClearCalendar(calendar string) (int64, error) {
	var n int64
	err := s.retryOnContention("clear calendar", func() error {
		res, err := s.db.Exec(`DELETE FROM entries WHERE calendar = ?`, calendar)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n, err
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.Entry, error) {
	var e model.Entry
	var startStr, endStr, precStr, createdStr string
	if err := row.Scan(&e.ID, &e.Calendar, &e.Label, &startStr, &endStr, &precStr, &createdStr); err != nil {
		return nil, err
	}
	start, err := time.Parse(time.RFC3339Nano, startStr)
	if err != nil {
		return nil, fmt.Errorf("parse start_at for entry %s: %w", e.ID, err)
	}
	end, err := time.Parse(time.RFC3339Nano, endStr)
	if err != nil {
		return nil, fmt.Errorf("parse end_at for entry %s: %w", e.ID, err)
	}
	prec, err := period.ParsePrecision(precStr)
	if err != nil {
		return nil, fmt.Errorf("parse precision for entry %s: %w", e.ID, err)
	}
	e.Period, err = period.New(start, end, prec)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.ID, err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for entry %s: %w", e.ID, err)
	}
	return &e, nil
}
