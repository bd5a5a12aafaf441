package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/pangan/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite snapshot of the dashboard.
type Store struct {
	db *sql.DB
}

// Open opens or creates the export database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDashboard replaces the stored snapshot with d.
func (s *Store) SaveDashboard(d *model.Dashboard, source string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"budget_lines", "kpis", "traffic_lights", "export_meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, l := range d.Budget {
		_, err = tx.Exec(`INSERT INTO budget_lines (position, program, budget, realization, status)
			VALUES (?, ?, ?, ?, ?)`,
			i, l.Program, l.BudgetAmount, l.RealizationPercent, string(l.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting budget line %q: %w", l.Program, err)
		}
	}

	for _, sec := range append([]model.Section{d.Overview}, d.Sections...) {
		for i, k := range sec.KPIs {
			_, err = tx.Exec(`INSERT INTO kpis (section_id, position, label, value, change, trend)
				VALUES (?, ?, ?, ?, ?, ?)`,
				sec.ID, i, k.Label, k.Value, k.Change, string(k.Trend),
			)
			if err != nil {
				return fmt.Errorf("inserting kpi %s/%s: %w", sec.ID, k.Label, err)
			}
		}
		for i, tl := range sec.TrafficLights {
			_, err = tx.Exec(`INSERT INTO traffic_lights (section_id, position, name, status)
				VALUES (?, ?, ?, ?)`,
				sec.ID, i, tl.Name, string(tl.Status),
			)
			if err != nil {
				return fmt.Errorf("inserting traffic light %s/%s: %w", sec.ID, tl.Name, err)
			}
		}
	}

	meta := map[string]string{
		"title":       d.Title,
		"source":      source,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT INTO export_meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Infof("exported %d budget lines to sqlite", len(d.Budget))
	return nil
}

// BudgetLines reads the stored budget lines in export order.
func (s *Store) BudgetLines() ([]model.BudgetLine, error) {
	rows, err := s.db.Query("SELECT program, budget, realization, status FROM budget_lines ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.BudgetLine
	for rows.Next() {
		var l model.BudgetLine
		var status string
		if err := rows.Scan(&l.Program, &l.BudgetAmount, &l.RealizationPercent, &status); err != nil {
			return nil, err
		}
		l.Status = model.Status(status)
		out = append(out, l)
	}
	return out, rows.Err()
}

// CountKPIs returns the number of stored KPIs per section.
func (s *Store) CountKPIs() (map[string]int, error) {
	rows, err := s.db.Query("SELECT section_id, COUNT(*) FROM kpis GROUP BY section_id")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// Meta returns one export_meta value.
func (s *Store) Meta(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM export_meta WHERE key = ?", key).Scan(&v)
	return v, err
}
