package repository

import "context"

const (
	createUUIDExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

	createUsersTable = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);`

	createCustomersTable = `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			image_url VARCHAR(255) NOT NULL
		);`

	createInvoicesTable = `
		CREATE TABLE IF NOT EXISTS invoices (
			id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
			customer_id UUID NOT NULL,
			amount INT NOT NULL,
			status VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
		);`

	createRevenueTable = `
		CREATE TABLE IF NOT EXISTS revenue (
			month VARCHAR(4) NOT NULL UNIQUE,
			revenue INT NOT NULL
		);`
)

// EnableUUIDExtension makes uuid_generate_v4 available for column defaults.
func EnableUUIDExtension(ctx context.Context, db Execer) error {
	return execDDL(ctx, db, createUUIDExtension)
}
