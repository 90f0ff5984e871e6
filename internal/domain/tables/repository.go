package tables

import "context"

// Repository returns ErrTableNotFound from GetByID when no row matches and
// ErrTableInUse from Delete when reservations still reference the table.
type Repository interface {
	List(ctx context.Context) ([]Table, error)
	GetByID(ctx context.Context, id int64) (*Table, error)
	Create(ctx context.Context, table *Table) error
	UpdateActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) (bool, error)
}
