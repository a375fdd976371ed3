package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cli-table/internal/log"
)

// ErrEmptyQuery is returned for blank SQL.
var ErrEmptyQuery = errors.New("empty query")

const (
	queryTimeout = 30 * time.Second

	// NullText is how SQL NULL is shown in a cell.
	NullText = "<NULL>"
)

// QueryResult holds the result of a query. Statements that return no rows
// produce a single "rows affected" column.
type QueryResult struct {
	Columns     []string
	ColumnTypes []string
	Rows        [][]string
	ExecTime    time.Duration
}

// Records returns the header followed by the data rows.
func (r *QueryResult) Records() [][]string {
	out := make([][]string, 0, len(r.Rows)+1)
	out = append(out, r.Columns)
	return append(out, r.Rows...)
}

// isSelectLike returns true if the query returns rows.
func isSelectLike(sql string) bool {
	upper := strings.ToUpper(strings.TrimSpace(sql))
	return strings.HasPrefix(upper, "SELECT") ||
		strings.HasPrefix(upper, "WITH") ||
		strings.HasPrefix(upper, "EXPLAIN") ||
		strings.HasPrefix(upper, "SHOW") ||
		strings.HasPrefix(upper, "VALUES") ||
		strings.HasPrefix(upper, "TABLE")
}

// Query runs sql and collects its rows as display strings.
func (d *DB) Query(ctx context.Context, sql string) (*QueryResult, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	var (
		res *QueryResult
		err error
	)
	if isSelectLike(trimmed) {
		res, err = d.querySelect(ctx, trimmed)
	} else {
		res, err = d.queryExec(ctx, trimmed)
	}
	if err != nil {
		return nil, err
	}
	res.ExecTime = time.Since(start)
	log.Debug("query returned %d rows in %s", len(res.Rows), res.ExecTime.Round(time.Millisecond))
	return res, nil
}

func (d *DB) querySelect(ctx context.Context, sql string) (*QueryResult, error) {
	rows, err := d.Conn.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	res := &QueryResult{
		Columns:     make([]string, len(fields)),
		ColumnTypes: make([]string, len(fields)),
	}
	for i, f := range fields {
		res.Columns[i] = f.Name
		res.ColumnTypes[i] = oidToTypeName(f.DataTypeOID)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *DB) queryExec(ctx context.Context, sql string) (*QueryResult, error) {
	tag, err := d.Conn.Exec(ctx, sql)
	if err != nil {
		return nil, err
	}
	return &QueryResult{
		Columns:     []string{"command", "rows affected"},
		ColumnTypes: []string{"text", "int8"},
		Rows:        [][]string{{tag.String(), fmt.Sprint(tag.RowsAffected())}},
	}, nil
}

// formatValue renders a decoded column value for a cell.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return NullText
	case []byte:
		return fmt.Sprintf("\\x%x", v)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// oidToTypeName maps common PostgreSQL OIDs to human-readable type names.
func oidToTypeName(oid uint32) string {
	switch oid {
	case 16:
		return "bool"
	case 17:
		return "bytea"
	case 20:
		return "int8"
	case 21:
		return "int2"
	case 23:
		return "int4"
	case 25:
		return "text"
	case 114:
		return "json"
	case 700:
		return "float4"
	case 701:
		return "float8"
	case 1042:
		return "bpchar"
	case 1043:
		return "varchar"
	case 1082:
		return "date"
	case 1114:
		return "timestamp"
	case 1184:
		return "timestamptz"
	case 1700:
		return "numeric"
	case 2950:
		return "uuid"
	case 3802:
		return "jsonb"
	default:
		return fmt.Sprintf("oid:%d", oid)
	}
}
