package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"cli-table/internal/log"
)

const (
	connectTimeout = 10 * time.Second
	closeTimeout   = 5 * time.Second
)

// DB wraps a pgx connection with metadata.
type DB struct {
	Conn     *pgx.Conn
	host     string
	port     string
	user     string
	database string
}

// Params are the individual connection fields.
type Params struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// URI builds a postgres:// URI from p, defaulting the port and sslmode.
func (p Params) URI() string {
	port := p.Port
	if port == "" {
		port = "5432"
	}
	user := url.User(p.User)
	if p.Password != "" {
		user = url.UserPassword(p.User, p.Password)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     p.Host + ":" + port,
		Path:     "/" + p.Database,
		RawQuery: "sslmode=prefer",
	}
	return u.String()
}

// Connect establishes a PostgreSQL connection from individual fields.
func Connect(ctx context.Context, p Params) (*DB, error) {
	return ConnectURI(ctx, p.URI())
}

// ConnectURI establishes a PostgreSQL connection from a raw URI string.
func ConnectURI(ctx context.Context, uri string) (*DB, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid URI: %w", err)
	}

	port := parsed.Port()
	if port == "" {
		port = "5432"
	}

	// Ensure sslmode is set if not already present
	q := parsed.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "prefer")
		parsed.RawQuery = q.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	start := time.Now()
	conn, err := pgx.Connect(ctx, parsed.String())
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	d := &DB{
		Conn:     conn,
		host:     parsed.Hostname(),
		port:     port,
		user:     parsed.User.Username(),
		database: strings.TrimPrefix(parsed.Path, "/"),
	}
	log.Debug("connected to %s in %s", d.ConnInfo(), time.Since(start).Round(time.Millisecond))
	return d, nil
}

// Database returns the current database name.
func (d *DB) Database() string {
	return d.database
}

// Close closes the database connection.
func (d *DB) Close() {
	if d.Conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		d.Conn.Close(ctx)
	}
}

// ConnInfo returns a display-safe connection string (no password).
func (d *DB) ConnInfo() string {
	return fmt.Sprintf("postgres://%s@%s:%s/%s", d.user, d.host, d.port, d.database)
}
