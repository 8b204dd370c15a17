// Package storage provides SQLite-based persistence for generated puzzles
// and play results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PuzzleRecord is the stored metadata of a generated puzzle.
type PuzzleRecord struct {
	ID           int64
	PuzzleID     string
	Difficulty   string
	Seed         uint64
	OptimalMoves int
	MoveLimit    int
	Stars        [3]int
	StateKey     string
	CreatedAt    time.Time
}

// ResultRecord is one finished game against a stored puzzle.
type ResultRecord struct {
	ID        int64
	PuzzleID  string
	Moves     int
	Stars     int
	Hints     int
	Won       bool
	CreatedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS puzzles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			seed INTEGER NOT NULL,
			optimal_moves INTEGER NOT NULL,
			move_limit INTEGER NOT NULL,
			star1 INTEGER NOT NULL,
			star2 INTEGER NOT NULL,
			star3 INTEGER NOT NULL,
			state_key TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			stars INTEGER NOT NULL,
			hints INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_puzzle_id ON results(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(puzzle_id, won, moves ASC);
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

// SavePuzzle records a generated puzzle. Returns the ID of the inserted row.
func (s *Store) SavePuzzle(rec PuzzleRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO puzzles
		 (puzzle_id, difficulty, seed, optimal_moves, move_limit, star1, star2, star3, state_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PuzzleID,
		rec.Difficulty,
		int64(rec.Seed),
		rec.OptimalMoves,
		rec.MoveLimit,
		rec.Stars[0],
		rec.Stars[1],
		rec.Stars[2],
		rec.StateKey,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// PuzzleByID retrieves a puzzle by its puzzle ID. Returns nil if not found.
func (s *Store) PuzzleByID(puzzleID string) (*PuzzleRecord, error) {
	var rec PuzzleRecord
	var seed int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, puzzle_id, difficulty, seed, optimal_moves, move_limit,
		        star1, star2, star3, state_key, created_at
		 FROM puzzles
		 WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(
		&rec.ID,
		&rec.PuzzleID,
		&rec.Difficulty,
		&seed,
		&rec.OptimalMoves,
		&rec.MoveLimit,
		&rec.Stars[0],
		&rec.Stars[1],
		&rec.Stars[2],
		&rec.StateKey,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}

	rec.Seed = uint64(seed)
	rec.CreatedAt = parseTimestamp(createdAt)
	return &rec, nil
}

// RecentPuzzles retrieves the most recently generated puzzles, optionally
// filtered by difficulty (empty string means all).
func (s *Store) RecentPuzzles(difficulty string, limit int) ([]PuzzleRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, puzzle_id, difficulty, seed, optimal_moves, move_limit,
	                 star1, star2, star3, state_key, created_at
	          FROM puzzles`
	args := []any{}
	if difficulty != "" {
		query += " WHERE difficulty = ?"
		args = append(args, difficulty)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var records []PuzzleRecord
	for rows.Next() {
		var rec PuzzleRecord
		var seed int64
		var createdAt any
		if err := rows.Scan(
			&rec.ID,
			&rec.PuzzleID,
			&rec.Difficulty,
			&seed,
			&rec.OptimalMoves,
			&rec.MoveLimit,
			&rec.Stars[0],
			&rec.Stars[1],
			&rec.Stars[2],
			&rec.StateKey,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Seed = uint64(seed)
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SaveResult records a finished game. Returns the ID of the inserted row.
func (s *Store) SaveResult(rec ResultRecord) (int64, error) {
	won := 0
	if rec.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO results (puzzle_id, moves, stars, hints, won)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.PuzzleID, rec.Moves, rec.Stars, rec.Hints, won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestResult returns the winning result with the fewest moves for a puzzle.
// Returns nil if the puzzle has never been won.
func (s *Store) BestResult(puzzleID string) (*ResultRecord, error) {
	var rec ResultRecord
	var won int
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, puzzle_id, moves, stars, hints, won, created_at
		 FROM results
		 WHERE puzzle_id = ? AND won = 1
		 ORDER BY moves ASC
		 LIMIT 1`,
		puzzleID,
	).Scan(&rec.ID, &rec.PuzzleID, &rec.Moves, &rec.Stars, &rec.Hints, &won, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best result: %w", err)
	}

	rec.Won = won != 0
	rec.CreatedAt = parseTimestamp(createdAt)
	return &rec, nil
}

// ResultsFor retrieves results for a puzzle, most recent first.
func (s *Store) ResultsFor(puzzleID string, limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, moves, stars, hints, won, created_at
		 FROM results
		 WHERE puzzle_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		var won int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.PuzzleID, &rec.Moves, &rec.Stars, &rec.Hints, &won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Won = won != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// DifficultyStats contains aggregated statistics for a difficulty tier.
type DifficultyStats struct {
	Difficulty   string
	PuzzleCount  int
	AvgOptimal   float64
	MaxOptimal   int
	LastGenerate time.Time
}

// StatsByDifficulty aggregates generation statistics per difficulty tier.
func (s *Store) StatsByDifficulty() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), AVG(optimal_moves), MAX(optimal_moves), MAX(created_at)
		 FROM puzzles
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get difficulty stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var d DifficultyStats
		var lastGenerate any
		if err := rows.Scan(&d.Difficulty, &d.PuzzleCount, &d.AvgOptimal, &d.MaxOptimal, &lastGenerate); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		d.LastGenerate = parseTimestamp(lastGenerate)
		stats[d.Difficulty] = &d
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
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
