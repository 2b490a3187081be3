package seeder

import (
	"fmt"

	"github.com/Jidetireni/invoice-dashboard/internal/dto"
	"github.com/google/uuid"
)

var invoiceNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("invoice-dashboard/invoices"))

// InvoiceID returns the explicit id of inv, or a stable id derived from its
// contents so that re-running the seed hits ON CONFLICT (id).
func InvoiceID(inv dto.SeedInvoice) uuid.UUID {
	if inv.ID != nil {
		return *inv.ID
	}

	key := fmt.Sprintf("%s|%d|%s|%s", inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	return uuid.NewSHA1(invoiceNamespace, []byte(key))
}
