// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the database location used when none is given.
const DefaultPath = "~/.arcade/sweeper.db"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one finished round.
type Result struct {
	ID        int64
	GameID    string
	Variant   string // e.g. "small/easy"
	Won       bool
	Duration  time.Duration
	Revealed  int // safe cells revealed
	CreatedAt time.Time
}

// Stats summarises the rounds of one variant.
type Stats struct {
	Played     int
	Won        int
	AverageWin time.Duration // mean duration of won rounds
	BestWin    time.Duration // zero when nothing was won
	LastPlayed time.Time
}

// WinRate returns the share of won rounds in [0, 1].
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			won INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			revealed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, won, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Variant == "" {
		return 0, fmt.Errorf("storage: result has no variant")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (game_id, variant, won, duration_ms, revealed) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Variant, r.Won, r.Duration.Milliseconds(), r.Revealed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestTimes retrieves the fastest won rounds of a variant.
// Ties are broken by the earlier record.
func (s *Store) BestTimes(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, variant, won, duration_ms, revealed, created_at
		 FROM results
		 WHERE variant = ? AND won = 1
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

func scanResult(rows *sql.Rows) (Result, error) {
	var r Result
	var ms int64
	var createdAt any
	if err := rows.Scan(&r.ID, &r.GameID, &r.Variant, &r.Won, &ms, &r.Revealed, &createdAt); err != nil {
		return Result{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(ms) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestTime returns the fastest win of a variant.
// ok is false if the variant was never won.
func (s *Store) BestTime(variant string) (best time.Duration, ok bool, err error) {
	var ms sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM results WHERE variant = ? AND won = 1",
		variant,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// Stats summarises every recorded round of a variant.
func (s *Store) Stats(variant string) (Stats, error) {
	var (
		st        Stats
		won       sql.NullInt64
		avg, best sql.NullFloat64
		last      any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        SUM(won),
		        AVG(CASE WHEN won = 1 THEN duration_ms END),
		        MIN(CASE WHEN won = 1 THEN duration_ms END),
		        MAX(created_at)
		 FROM results
		 WHERE variant = ?`,
		variant,
	).Scan(&st.Played, &won, &avg, &best, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	st.Won = int(won.Int64)
	if avg.Valid {
		st.AverageWin = time.Duration(avg.Float64) * time.Millisecond
	}
	if best.Valid {
		st.BestWin = time.Duration(best.Float64) * time.Millisecond
	}
	st.LastPlayed = parseTime(last)
	return st, nil
}

// Variants lists every variant that has recorded rounds, sorted by name.
func (s *Store) Variants() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT variant FROM results ORDER BY variant")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query variants: %w", err)
	}
	defer rows.Close()

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		variants = append(variants, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return variants, nil
}

// ClearResults deletes all rounds of a variant. An empty variant clears everything.
func (s *Store) ClearResults(variant string) error {
	var err error
	if variant == "" {
		_, err = s.db.Exec("DELETE FROM results")
	} else {
		_, err = s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
