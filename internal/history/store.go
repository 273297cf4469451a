package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an entry id does not exist.
var ErrNotFound = errors.New("history entry not found")

// Entry is one saved calculation.
type Entry struct {
	ID             string          `json:"id"`
	CalculatorType string          `json:"calculator_type"`
	Inputs         json.RawMessage `json:"inputs"`
	Results        json.RawMessage `json:"results"`
	Timestamp      time.Time       `json:"timestamp"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
}

// MonthlySummary aggregates one calendar month of history.
type MonthlySummary struct {
	Year              int            `json:"year"`
	Month             int            `json:"month"`
	TotalCalculations int            `json:"total_calculations"`
	ByCalculator      map[string]int `json:"by_calculator"`
	MostUsed          string         `json:"most_used"`
	Calculations      []Entry        `json:"calculations"`
}

// Store persists calculation history in sqlite.
//
// It carries a generation counter that increments on every mutation.
// Consumers that cache derived views (analytics, summaries) compare
// generations instead of invalidating blindly.
type Store struct {
	db         *sql.DB
	generation atomic.Int64
}

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id TEXT PRIMARY KEY,
	calculator_type TEXT NOT NULL,
	inputs TEXT NOT NULL,
	results TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_history_type ON history(calculator_type);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -2000",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Generation returns the current mutation counter. It changes whenever an
// entry is saved, deleted or the history is cleared.
func (s *Store) Generation() int64 {
	return s.generation.Load()
}

// Save stores a new entry and returns its generated id.
func (s *Store) Save(ctx context.Context, calculatorType string, inputs, results json.RawMessage) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, calculator_type, inputs, results, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, calculatorType, string(inputs), string(results), now,
	)
	if err != nil {
		return "", fmt.Errorf("insert history entry: %w", err)
	}

	s.generation.Add(1)
	return id, nil
}

// List returns entries newest first. An empty calculatorType returns all
// entries, limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, calculatorType string, limit int) ([]Entry, error) {
	query := `SELECT id, calculator_type, inputs, results, created_at FROM history`
	args := []any{}

	if calculatorType != "" {
		query += ` WHERE calculator_type = ?`
		args = append(args, calculatorType)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get returns a single entry by id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, calculator_type, inputs, results, created_at FROM history WHERE id = ?`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get history entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry by id, returning ErrNotFound for unknown ids.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.generation.Add(1)
	return nil
}

// Clear removes all entries, or only those of the given calculator type
// when calcType is non-empty, and returns how many were deleted.
func (s *Store) Clear(ctx context.Context, calcType string) (int64, error) {
	query := `DELETE FROM history`
	var args []any
	if calcType != "" {
		query += ` WHERE calculator_type = ?`
		args = append(args, calcType)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}

	s.generation.Add(1)
	return affected, nil
}

// Monthly returns the summary for the given year and month.
func (s *Store) Monthly(ctx context.Context, year, month int) (MonthlySummary, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, calculator_type, inputs, results, created_at FROM history
		 WHERE created_at >= ? AND created_at < ?
		 ORDER BY created_at DESC`,
		start, end,
	)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("query monthly history: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return MonthlySummary{}, err
	}

	summary := MonthlySummary{
		Year:              year,
		Month:             month,
		TotalCalculations: len(entries),
		ByCalculator:      map[string]int{},
		Calculations:      entries,
	}

	for _, entry := range entries {
		summary.ByCalculator[entry.CalculatorType]++
	}
	best := 0
	for calcType, count := range summary.ByCalculator {
		if count > best || (count == best && calcType < summary.MostUsed) {
			best = count
			summary.MostUsed = calcType
		}
	}

	return summary, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var entry Entry
	var inputs, results string
	var createdAt time.Time

	if err := row.Scan(&entry.ID, &entry.CalculatorType, &inputs, &results, &createdAt); err != nil {
		return Entry{}, err
	}

	entry.Inputs = json.RawMessage(inputs)
	entry.Results = json.RawMessage(results)
	entry.Timestamp = createdAt
	entry.Date = createdAt.Format("2006-01-02")
	entry.Time = createdAt.Format("15:04:05")

	return entry, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return entries, nil
}
