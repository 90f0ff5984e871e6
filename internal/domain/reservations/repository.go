package reservations

import (
	"context"
	"time"

	"table-reservations-go/internal/domain/tables"
)

// Repository returns ErrReservationNotFound for lookups that match nothing and
// ErrSlotConflict when a write would duplicate a (table, instant) pair.
type Repository interface {
	List(ctx context.Context) ([]Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	// ListByDate returns reservations whose instant falls on the UTC
	// calendar day starting at day.
	ListByDate(ctx context.Context, day time.Time) ([]Reservation, error)
	GetByTableAndDateTime(ctx context.Context, tableID int64, at time.Time) (*Reservation, error)
	Create(ctx context.Context, reservation *Reservation) error
	Update(ctx context.Context, reservation *Reservation) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// TableReader is the slice of the table store the reservation rules consult.
type TableReader interface {
	List(ctx context.Context) ([]tables.Table, error)
	GetByID(ctx context.Context, id int64) (*tables.Table, error)
}
