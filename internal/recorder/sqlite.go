package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists simulation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS simulations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			product     TEXT,
			subcategory TEXT,
			location    TEXT,
			ad_type     TEXT,
			ad_approach TEXT,
			roi         REAL,
			revenue     REAL,
			cost        REAL,
			analysis    TEXT,
			suggestions TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_ts ON simulations(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSimulation(rec *SimulationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	analysis, err := json.Marshal(rec.Analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	suggestions, err := json.Marshal(rec.Suggestions)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO simulations
		(timestamp, product, subcategory, location, ad_type, ad_approach,
		 roi, revenue, cost, analysis, suggestions)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Product, rec.Subcategory, rec.Location,
		rec.AdType, rec.AdApproach,
		rec.ROI, rec.Revenue, rec.Cost,
		string(analysis), string(suggestions),
	)
	return err
}

func (r *SQLiteRecorder) CountSimulations() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	err := r.db.QueryRow(`SELECT COUNT(*) FROM simulations`).Scan(&n)
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
