package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lcintel/internal/port"
	"lcintel/internal/unlocode"
)

type locodeRepo struct {
	db *sqlx.DB
}

// NewLocodeRepo creates a new PostgreSQL-backed LocodeRepository.
func NewLocodeRepo(db *sqlx.DB) port.LocodeRepository {
	return &locodeRepo{db: db}
}

func (r *locodeRepo) LoadAll(ctx context.Context) ([]unlocode.Entry, error) {
	var entries []unlocode.Entry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT country, locode, name, name_ascii, subdivision, function, iata, lat, lon
		 FROM locations
		 ORDER BY country, locode`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *locodeRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM locations")
	if err != nil {
		return 0, err
	}
	return count, nil
}
