package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

type PostgresDB struct {
	DB         *sqlx.DB
	SqlBuilder sq.StatementBuilderType
}

// New opens and pings a Postgres connection. The returned cleanup closes it.
func New(ctx context.Context, URL, sslMode string) (*PostgresDB, func(), error) {
	dsn, err := withSSLMode(URL, sslMode)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid database url: %w", err)
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return Wrap(db), func() {
		_ = db.Close()
	}, nil
}

// Wrap adapts an already open handle, e.g. one backed by sqlmock.
func Wrap(db *sqlx.DB) *PostgresDB {
	db.Mapper = reflectx.NewMapper("json")

	return &PostgresDB{
		DB:         db,
		SqlBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// withSSLMode sets sslmode on a postgres:// URL unless the URL already carries one.
// Key/value DSNs are left alone apart from appending the mode.
func withSSLMode(rawURL, sslMode string) (string, error) {
	if sslMode == "" {
		return rawURL, nil
	}

	if !strings.HasPrefix(rawURL, "postgres://") && !strings.HasPrefix(rawURL, "postgresql://") {
		if strings.Contains(rawURL, "sslmode=") {
			return rawURL, nil
		}
		return strings.TrimSpace(rawURL + " sslmode=" + sslMode), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", sslMode)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
