package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lcintel/internal/domain"
	"lcintel/internal/port"
)

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) LookupByAccount(ctx context.Context, customerNo, accountNo string) (*domain.CustomerRecord, error) {
	var record domain.CustomerRecord
	err := r.db.GetContext(ctx, &record,
		`SELECT c.customer_no, c.customer_name, c.short_name, c.address,
		        c.country, c.nationality,
		        a.account_number, a.description AS account_description,
		        a.currency AS account_currency, a.current_balance,
		        a.status AS account_status, a.open_date AS account_open_date,
		        COALESCE(l.lc_number, '') AS lc_number,
		        COALESCE(l.lc_amount, '') AS lc_amount,
		        COALESCE(l.lc_currency, '') AS lc_currency,
		        COALESCE(l.swift_number, '') AS swift_number,
		        COALESCE(l.applicant_bank, '') AS applicant_bank,
		        COALESCE(l.hs_code, '') AS hs_code,
		        COALESCE(l.expiry_date, '') AS expiry_date
		 FROM customers c
		 JOIN accounts a ON a.customer_no = c.customer_no
		 LEFT JOIN letters_of_credit l ON l.account_number = a.account_number
		 WHERE c.customer_no = $1 AND a.account_number = $2
		 ORDER BY l.created_at DESC NULLS LAST
		 LIMIT 1`,
		customerNo, accountNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("customerRepo.LookupByAccount: %w", err)
	}
	return &record, nil
}
