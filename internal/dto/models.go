package dto

import "github.com/google/uuid"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

type SeedUser struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=255"`
	Email    string    `json:"email" validate:"required,email"`
	Password string    `json:"password" validate:"required"`
}

type SeedCustomer struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=255"`
	Email    string    `json:"email" validate:"required,email,max=255"`
	ImageURL string    `json:"image_url" validate:"required,max=255"`
}

// SeedInvoice has no id in the dataset; one is derived when seeding.
type SeedInvoice struct {
	ID         *uuid.UUID    `json:"id,omitempty"`
	CustomerID uuid.UUID     `json:"customer_id" validate:"required"`
	Amount     int           `json:"amount" validate:"gte=0"`
	Status     InvoiceStatus `json:"status" validate:"required,oneof=pending paid"`
	Date       string        `json:"date" validate:"required,datetime=2006-01-02"`
}

type SeedRevenue struct {
	Month   string `json:"month" validate:"required,max=4"`
	Revenue int    `json:"revenue" validate:"gte=0"`
}

type Dataset struct {
	Users     []SeedUser     `json:"users" validate:"dive"`
	Customers []SeedCustomer `json:"customers" validate:"dive"`
	Invoices  []SeedInvoice  `json:"invoices" validate:"dive"`
	Revenue   []SeedRevenue  `json:"revenue" validate:"dive"`
}

// StepSummary is the per-table outcome of one seeding run.
type StepSummary struct {
	Step      string `json:"step"`
	Processed int    `json:"processed"`
	Inserted  int64  `json:"inserted"`
}
