package db

import (
	"context"
	"time"
)

const schemaTimeout = 10 * time.Second

// ColumnInfo holds metadata about a table column.
type ColumnInfo struct {
	Name          string
	DataType      string
	IsNullable    string
	ColumnDefault *string
}

// ListTables returns all public base tables sorted by name.
func (d *DB) ListTables(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	rows, err := d.Conn.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`)
	if err != nil {
		return nil, err
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

// GetColumns returns column metadata for a table.
func (d *DB) GetColumns(ctx context.Context, tableName string) ([]ColumnInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	rows, err := d.Conn.Query(ctx, `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_name = $1
		  AND table_schema = 'public'
		ORDER BY ordinal_position
	`, tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []ColumnInfo
	for rows.Next() {
		var c ColumnInfo
		if err := rows.Scan(&c.Name, &c.DataType, &c.IsNullable, &c.ColumnDefault); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// TablesRecords lays out table names as a one-column table.
func TablesRecords(tables []string) [][]string {
	out := [][]string{{"table"}}
	for _, t := range tables {
		out = append(out, []string{t})
	}
	return out
}

// ColumnsRecords lays out column metadata with a header row.
func ColumnsRecords(cols []ColumnInfo) [][]string {
	out := [][]string{{"column", "type", "nullable", "default"}}
	for _, c := range cols {
		def := NullText
		if c.ColumnDefault != nil {
			def = *c.ColumnDefault
		}
		out = append(out, []string{c.Name, c.DataType, c.IsNullable, def})
	}
	return out
}
