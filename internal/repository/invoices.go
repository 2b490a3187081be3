package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type InvoiceRepository struct {
	db   Execer
	psql sq.StatementBuilderType
}

func NewInvoiceRepository(db Execer) *InvoiceRepository {
	return &InvoiceRepository{
		db:   db,
		psql: newBuilder(),
	}
}

// CreateTable requires the customers table to exist.
func (ir *InvoiceRepository) CreateTable(ctx context.Context) error {
	return execDDL(ctx, ir.db, createInvoicesTable)
}

func (ir *InvoiceRepository) Insert(ctx context.Context, invoice *Invoice) (int64, error) {
	builder := ir.psql.Insert("invoices").
		Columns("id", "customer_id", "amount", "status", "date").
		Values(invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date).
		Suffix("ON CONFLICT (id) DO NOTHING")

	return execInsert(ctx, ir.db, builder)
}
