// Package storage provides SQLite-based persistence for target selections.
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

// CancelledTarget is stored as the target of a cancelled selection.
const CancelledTarget = -1

// Store manages the SQLite database connection for selection history.
type Store struct {
	db *sql.DB
}

// Selection is one resolved target-selection session.
type Selection struct {
	ID         int64
	ScenarioID string
	Actor      int
	ActorName  string
	MoveID     string
	Target     int // CancelledTarget when the player backed out
	TargetName string
	Multiplier float64
	CreatedAt  time.Time
}

// Cancelled reports whether the session ended without a target.
func (s Selection) Cancelled() bool {
	return s.Target == CancelledTarget
}

// TargetCount is how often a slot was picked.
type TargetCount struct {
	Target     int
	TargetName string
	Count      int
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	ScenarioID string
	Selections int
	Cancelled  int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS selections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			actor INTEGER NOT NULL,
			actor_name TEXT NOT NULL,
			move_id TEXT NOT NULL,
			target INTEGER NOT NULL,
			target_name TEXT NOT NULL DEFAULT '',
			multiplier REAL NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_selections_scenario ON selections(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_selections_target ON selections(scenario_id, target);
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

// SaveSelection records a resolved session.
// Returns the ID of the inserted record.
func (s *Store) SaveSelection(sel Selection) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO selections
		 (scenario_id, actor, actor_name, move_id, target, target_name, multiplier)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sel.ScenarioID, sel.Actor, sel.ActorName, sel.MoveID,
		sel.Target, sel.TargetName, sel.Multiplier,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save selection: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSelections retrieves the newest selections, newest first.
// An empty scenarioID matches every scenario.
func (s *Store) RecentSelections(scenarioID string, limit int) ([]Selection, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, actor, actor_name, move_id, target, target_name, multiplier, created_at
		 FROM selections
		 WHERE ? = '' OR scenario_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		scenarioID, scenarioID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query selections: %w", err)
	}
	defer rows.Close()

	var entries []Selection
	for rows.Next() {
		var e Selection
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.ScenarioID, &e.Actor, &e.ActorName, &e.MoveID,
			&e.Target, &e.TargetName, &e.Multiplier, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// TargetCounts returns how often each slot was confirmed in a scenario,
// most picked first. Cancelled sessions are not counted.
func (s *Store) TargetCounts(scenarioID string) ([]TargetCount, error) {
	rows, err := s.db.Query(
		`SELECT target, target_name, COUNT(*) AS n
		 FROM selections
		 WHERE scenario_id = ? AND target != ?
		 GROUP BY target, target_name
		 ORDER BY n DESC, target ASC`,
		scenarioID, CancelledTarget,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query target counts: %w", err)
	}
	defer rows.Close()

	var counts []TargetCount
	for rows.Next() {
		var c TargetCount
		if err := rows.Scan(&c.Target, &c.TargetName, &c.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// GetAllScenarioStats retrieves statistics for every scenario played.
func (s *Store) GetAllScenarioStats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario_id, COUNT(*), SUM(CASE WHEN target = ? THEN 1 ELSE 0 END), MAX(created_at)
		 FROM selections
		 GROUP BY scenario_id`,
		CancelledTarget,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastPlayed any
		if err := rows.Scan(&st.ScenarioID, &st.Selections, &st.Cancelled, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.ScenarioID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSelections deletes the history of one scenario, or of all of them
// when scenarioID is empty.
func (s *Store) ClearSelections(scenarioID string) error {
	query, args := "DELETE FROM selections", []any{}
	if scenarioID != "" {
		query += " WHERE scenario_id = ?"
		args = append(args, scenarioID)
	}
	_, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("storage: cannot clear selections: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
