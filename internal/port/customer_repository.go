package port

import (
	"context"

	"lcintel/internal/domain"
)

// CustomerRepository provides access to core banking customer records.
type CustomerRepository interface {
	// LookupByAccount returns the customer joined with account and L/C
	// registration data, or domain.ErrCustomerNotFound.
	LookupByAccount(ctx context.Context, customerNo, accountNo string) (*domain.CustomerRecord, error)
}
