package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		mode     string
		expected string
	}{
		{"Adds mode to url", "postgres://u:p@host:5432/db", "require", "postgres://u:p@host:5432/db?sslmode=require"},
		{"Keeps existing mode", "postgres://u:p@host:5432/db?sslmode=disable", "require", "postgres://u:p@host:5432/db?sslmode=disable"},
		{"Keeps other params", "postgresql://host/db?connect_timeout=5", "require", "postgresql://host/db?connect_timeout=5&sslmode=require"},
		{"Key value dsn", "host=localhost dbname=db", "require", "host=localhost dbname=db sslmode=require"},
		{"Key value dsn with mode", "host=localhost sslmode=disable", "require", "host=localhost sslmode=disable"},
		{"Empty mode", "postgres://host/db", "", "postgres://host/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := withSSLMode(tt.url, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWithSSLMode_InvalidURL(t *testing.T) {
	_, err := withSSLMode("postgres://host:port/db", "require")
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	pg := Wrap(sqlx.NewDb(db, "sqlmock"))

	query, args, err := pg.SqlBuilder.Insert("revenue").Columns("month", "revenue").Values("Jan", 2000).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO revenue (month,revenue) VALUES ($1,$2)", query)
	assert.Equal(t, []any{"Jan", 2000}, args)
}
