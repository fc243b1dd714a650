package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datapilot-io/datapilot/pkg/model"

	_ "modernc.org/sqlite"
)

// Warehouse provides read access to the local sqlite warehouse. Every
// operation opens a fresh read-only connection and closes it before
// returning; there is no pooling and no transaction beyond the implicit
// single statement.
type Warehouse struct {
	path string
}

// NewWarehouse creates a handle for the database at path. The file is not
// touched until an operation runs.
func NewWarehouse(path string) *Warehouse {
	return &Warehouse{path: path}
}

// Path returns the database file location.
func (w *Warehouse) Path() string {
	return w.path
}

func (w *Warehouse) openReadOnly() (*sql.DB, error) {
	if _, err := os.Stat(w.path); err != nil {
		return nil, fmt.Errorf("warehouse not found at %s (run the seed command first): %w", w.path, err)
	}
	conn, err := sql.Open("sqlite", "file:"+w.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}
	return conn, nil
}

// Tables lists user tables in name order.
func (w *Warehouse) Tables() ([]string, error) {
	conn, err := w.openReadOnly()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Describe returns a table's columns in definition order.
func (w *Warehouse) Describe(table string) ([]model.Column, error) {
	conn, err := w.openReadOnly()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer rows.Close()

	var columns []model.Column
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal interface{}
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, model.Column{Name: name, Type: typ})
	}
	return columns, rows.Err()
}

// SchemaDescription renders every table and its columns as prompt text.
func (w *Warehouse) SchemaDescription() (string, error) {
	tables, err := w.Tables()
	if err != nil {
		return "", err
	}

	var sections []string
	for _, table := range tables {
		columns, err := w.Describe(table)
		if err != nil {
			return "", err
		}
		lines := make([]string, 0, len(columns)+1)
		lines = append(lines, fmt.Sprintf("Table: %s", table))
		for _, col := range columns {
			lines = append(lines, fmt.Sprintf("  - %s: %s", col.Name, col.Type))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return strings.Join(sections, "\n\n"), nil
}

// Query executes one read-only statement and returns column names plus rows
// as ordered maps. The connection is closed before returning.
func (w *Warehouse) Query(query string) ([]string, []map[string]interface{}, error) {
	conn, err := w.openReadOnly()
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	rows, err := conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}
	return columns, results, rows.Err()
}

// Seed creates the sample warehouse with the analytics_events_daily table.
// Existing data in that table is left alone.
func (w *Warehouse) Seed() (int, error) {
	if dir := filepath.Dir(w.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", "file:"+w.path)
	if err != nil {
		return 0, fmt.Errorf("open warehouse: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS analytics_events_daily (
			event_date  DATE,
			city        VARCHAR,
			category    VARCHAR,
			event_count INTEGER,
			avg_value   DOUBLE
		)`); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}

	var existing int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM analytics_events_daily`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing == 0 {
		if _, err := conn.Exec(`
			INSERT INTO analytics_events_daily VALUES
			('2026-01-18', 'Paris', 'traffic', 1500, 75.5),
			('2026-01-18', 'Lyon',  'traffic',  800, 68.2),
			('2026-01-19', 'Paris', 'traffic', 1600, 78.3),
			('2026-01-19', 'Lyon',  'traffic',  850, 70.1),
			('2026-01-20', 'Paris', 'weather', 2000, 15.5),
			('2026-01-20', 'Lyon',  'weather', 1200, 12.3),
			('2026-01-21', 'Paris', 'traffic', 1550, 76.8),
			('2026-01-21', 'Lyon',  'traffic',  820, 69.5)`); err != nil {
			return 0, fmt.Errorf("insert sample data: %w", err)
		}
	}

	var total int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM analytics_events_daily`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
