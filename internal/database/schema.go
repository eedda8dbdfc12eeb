package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Column is one row of PRAGMA table_info.
type Column struct {
	Name       string
	Type       string
	NotNull    bool
	Default    sql.NullString
	PrimaryKey bool
}

// Tables lists user tables in name order, skipping SQLite's internal ones
// (sqlite_sequence and friends).
func Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}
	return out, nil
}

// Columns describes table in declaration order.
func Columns(ctx context.Context, db *sql.DB, table string) ([]Column, error) {
	// table_info does not take bound parameters; the table-valued form does.
	rows, err := db.QueryContext(ctx,
		`SELECT name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", table, err)
	}
	defer rows.Close()

	var out []Column
	for rows.Next() {
		var (
			c       Column
			notNull int
			pk      int
		)
		if err := rows.Scan(&c.Name, &c.Type, &notNull, &c.Default, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns of %s: %w", table, err)
	}
	return out, nil
}

// Definitions returns the stored CREATE statement of every user table and
// index, keyed by name.
func Definitions(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, COALESCE(sql, '') FROM sqlite_master
		WHERE name NOT LIKE 'sqlite_%'
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, ddl string
		if err := rows.Scan(&name, &ddl); err != nil {
			return nil, fmt.Errorf("failed to scan schema row: %w", err)
		}
		out[name] = ddl
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schema rows: %w", err)
	}
	return out, nil
}
