package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type CustomerRepository struct {
	db   Execer
	psql sq.StatementBuilderType
}

func NewCustomerRepository(db Execer) *CustomerRepository {
	return &CustomerRepository{
		db:   db,
		psql: newBuilder(),
	}
}

func (cr *CustomerRepository) CreateTable(ctx context.Context) error {
	return execDDL(ctx, cr.db, createCustomersTable)
}

func (cr *CustomerRepository) Insert(ctx context.Context, customer *Customer) (int64, error) {
	builder := cr.psql.Insert("customers").
		Columns("id", "name", "email", "image_url").
		Values(customer.ID, customer.Name, customer.Email, customer.ImageURL).
		Suffix("ON CONFLICT (id) DO NOTHING")

	return execInsert(ctx, cr.db, builder)
}
