package seeder

import (
	"context"
	"fmt"

	"github.com/Jidetireni/invoice-dashboard/internal/repository"
	"github.com/Jidetireni/invoice-dashboard/pkg/database"
)

func (s *Seeder) steps(pg *database.PostgresDB) []step {
	users := repository.NewUserRepository(pg.DB)
	customers := repository.NewCustomerRepository(pg.DB)
	invoices := repository.NewInvoiceRepository(pg.DB)
	revenue := repository.NewRevenueRepository(pg.DB)

	return []step{
		{
			name: StepUsers,
			ensure: func(ctx context.Context) error {
				if err := repository.EnableUUIDExtension(ctx, pg.DB); err != nil {
					return err
				}
				return users.CreateTable(ctx)
			},
			rows: len(s.Dataset.Users),
			insert: func(ctx context.Context, i int) (int64, error) {
				u := s.Dataset.Users[i]
				hash, err := s.Hasher.HashPassword(u.Password, s.Options.Cost)
				if err != nil {
					return 0, fmt.Errorf("hash password: %w", err)
				}

				return users.Insert(ctx, &repository.User{
					ID:       u.ID,
					Name:     u.Name,
					Email:    u.Email,
					Password: hash,
				})
			},
		},
		{
			name: StepCustomers,
			ensure: func(ctx context.Context) error {
				if err := repository.EnableUUIDExtension(ctx, pg.DB); err != nil {
					return err
				}
				return customers.CreateTable(ctx)
			},
			rows: len(s.Dataset.Customers),
			insert: func(ctx context.Context, i int) (int64, error) {
				c := s.Dataset.Customers[i]
				return customers.Insert(ctx, &repository.Customer{
					ID:       c.ID,
					Name:     c.Name,
					Email:    c.Email,
					ImageURL: c.ImageURL,
				})
			},
		},
		{
			name: StepInvoices,
			ensure: func(ctx context.Context) error {
				if err := repository.EnableUUIDExtension(ctx, pg.DB); err != nil {
					return err
				}
				return invoices.CreateTable(ctx)
			},
			rows: len(s.Dataset.Invoices),
			insert: func(ctx context.Context, i int) (int64, error) {
				inv := s.Dataset.Invoices[i]
				return invoices.Insert(ctx, &repository.Invoice{
					ID:         InvoiceID(inv),
					CustomerID: inv.CustomerID,
					Amount:     inv.Amount,
					Status:     string(inv.Status),
					Date:       inv.Date,
				})
			},
		},
		{
			name:   StepRevenue,
			ensure: revenue.CreateTable,
			rows:   len(s.Dataset.Revenue),
			insert: func(ctx context.Context, i int) (int64, error) {
				r := s.Dataset.Revenue[i]
				return revenue.Insert(ctx, &repository.Revenue{
					Month:   r.Month,
					Revenue: r.Revenue,
				})
			},
		},
	}
}
