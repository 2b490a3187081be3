package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Execer is the only capability the repositories need from the store.
// *sqlx.DB and *sqlx.Tx both satisfy it.
type Execer = sqlx.ExecerContext

func newBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

func execDDL(ctx context.Context, db Execer, stmt string) error {
	_, err := db.ExecContext(ctx, stmt)
	return err
}

// execInsert runs the insert and reports how many rows it wrote. A skipped
// conflicting row reports zero.
func execInsert(ctx context.Context, db Execer, builder sq.InsertBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
