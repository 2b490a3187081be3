package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type RevenueRepository struct {
	db   Execer
	psql sq.StatementBuilderType
}

func NewRevenueRepository(db Execer) *RevenueRepository {
	return &RevenueRepository{
		db:   db,
		psql: newBuilder(),
	}
}

func (rr *RevenueRepository) CreateTable(ctx context.Context) error {
	return execDDL(ctx, rr.db, createRevenueTable)
}

func (rr *RevenueRepository) Insert(ctx context.Context, rev *Revenue) (int64, error) {
	builder := rr.psql.Insert("revenue").
		Columns("month", "revenue").
		Values(rev.Month, rev.Revenue).
		Suffix("ON CONFLICT (month) DO NOTHING")

	return execInsert(ctx, rr.db, builder)
}
