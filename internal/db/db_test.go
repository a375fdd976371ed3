package db

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_URI(t *testing.T) {
	t.Parallel()

	uri := Params{Host: "localhost", User: "app", Password: "p@ss/word", Database: "shop"}.URI()

	u, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost", u.Hostname())
	assert.Equal(t, "5432", u.Port())
	assert.Equal(t, "/shop", u.Path)
	assert.Equal(t, "prefer", u.Query().Get("sslmode"))

	pw, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss/word", pw)
}

func TestIsSelectLike(t *testing.T) {
	t.Parallel()

	for _, sql := range []string{"select 1", "  WITH x AS (SELECT 1) SELECT * FROM x", "explain select 1", "show search_path", "VALUES (1)"} {
		assert.True(t, isSelectLike(sql), sql)
	}
	for _, sql := range []string{"UPDATE t SET a = 1", "insert into t values (1)", "delete from t"} {
		assert.False(t, isSelectLike(sql), sql)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "null", in: nil, want: NullText},
		{name: "int", in: int64(42), want: "42"},
		{name: "bytes", in: []byte{0xde, 0xad}, want: `\xdead`},
		{name: "time", in: ts, want: "2024-03-01T12:00:00Z"},
		{name: "stringer", in: pgconn.NewCommandTag("UPDATE 3"), want: "UPDATE 3"},
		{name: "text", in: "Добры вечар", want: "Добры вечар"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}

func TestOidToTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", oidToTypeName(25))
	assert.Equal(t, "jsonb", oidToTypeName(3802))
	assert.Equal(t, "oid:9999", oidToTypeName(9999))
}

func TestQueryResult_Records(t *testing.T) {
	t.Parallel()

	res := &QueryResult{Columns: []string{"id", "name"}, Rows: [][]string{{"1", "a"}, {"2", NullText}}}
	assert.Equal(t, [][]string{{"id", "name"}, {"1", "a"}, {"2", NullText}}, res.Records())
}

func TestQuery_Empty(t *testing.T) {
	t.Parallel()

	_, err := (&DB{}).Query(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestSchemaRecords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][]string{{"table"}, {"orders"}, {"users"}}, TablesRecords([]string{"orders", "users"}))

	def := "nextval('users_id_seq')"
	got := ColumnsRecords([]ColumnInfo{
		{Name: "id", DataType: "integer", IsNullable: "NO", ColumnDefault: &def},
		{Name: "email", DataType: "text", IsNullable: "YES"},
	})
	assert.Equal(t, [][]string{
		{"column", "type", "nullable", "default"},
		{"id", "integer", "NO", def},
		{"email", "text", "YES", NullText},
	}, got)
}

func TestConnInfo_HidesPassword(t *testing.T) {
	t.Parallel()

	d := &DB{host: "db", port: "5432", user: "app", database: "shop"}
	assert.Equal(t, "postgres://app@db:5432/shop", d.ConnInfo())
}
