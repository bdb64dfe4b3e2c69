package port

import (
	"context"

	"lcintel/internal/unlocode"
)

// LocodeRepository provides access to the UN/LOCODE reference table.
type LocodeRepository interface {
	LoadAll(ctx context.Context) ([]unlocode.Entry, error)
	CountAll(ctx context.Context) (int, error)
}
