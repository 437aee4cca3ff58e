// Package progress persists which levels a player has unlocked.
package progress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// FirstLevel is always unlocked.
const FirstLevel = 1

type Store struct {
	db *sql.DB
}

// Completion is one recorded level completion.
type Completion struct {
	LevelID     int
	Deaths      int
	CompletedAt time.Time
}

// Open creates or opens the progress database at dbPath, creating parent
// directories as needed. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("progress: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("progress: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("progress: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS unlocked_levels (
			level_id INTEGER PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			deaths INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level ON completions(level_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO unlocked_levels (level_id) VALUES (?)", FirstLevel)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Unlocked returns every unlocked level id in ascending order.
func (s *Store) Unlocked() ([]int, error) {
	rows, err := s.db.Query("SELECT level_id FROM unlocked_levels ORDER BY level_id")
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query unlocked levels: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("progress: cannot scan level id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) IsUnlocked(levelID int) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM unlocked_levels WHERE level_id = ?", levelID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("progress: cannot check level %d: %w", levelID, err)
	}
	return n > 0, nil
}

// Unlock marks levelID as playable. Unlocking twice is a no-op.
func (s *Store) Unlock(levelID int) error {
	if _, err := s.db.Exec("INSERT OR IGNORE INTO unlocked_levels (level_id) VALUES (?)", levelID); err != nil {
		return fmt.Errorf("progress: cannot unlock level %d: %w", levelID, err)
	}
	return nil
}

// CompleteLevel records a completion of levelID and unlocks the level after
// it when lastLevel allows. It returns the next level id, or 0 when levelID
// was the last one.
func (s *Store) CompleteLevel(levelID, deaths, lastLevel int) (int, error) {
	if _, err := s.db.Exec(
		"INSERT INTO completions (level_id, deaths) VALUES (?, ?)",
		levelID, deaths,
	); err != nil {
		return 0, fmt.Errorf("progress: cannot record completion: %w", err)
	}

	next := levelID + 1
	if lastLevel > 0 && next > lastLevel {
		log.Info("progress: final level complete", "level", levelID)
		return 0, nil
	}
	if err := s.Unlock(next); err != nil {
		return 0, err
	}
	log.Info("progress: level unlocked", "level", next)
	return next, nil
}

// Completions returns the recorded completions of levelID, fewest deaths
// first.
func (s *Store) Completions(levelID int) ([]Completion, error) {
	rows, err := s.db.Query(
		"SELECT level_id, deaths, completed_at FROM completions WHERE level_id = ? ORDER BY deaths ASC, completed_at ASC",
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot query completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.LevelID, &c.Deaths, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("progress: cannot scan completion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Reset forgets all progress. Only the first level stays unlocked.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM completions; DELETE FROM unlocked_levels;"); err != nil {
		return fmt.Errorf("progress: cannot reset: %w", err)
	}
	return s.Unlock(FirstLevel)
}
