package reservations

import (
	"errors"

	"table-reservations-go/internal/domain/errs"
)

var ErrReservationNotFound = errors.New("reservation not found")

var (
	ErrTableNotFound = errs.ErrTableNotFound
	ErrTableInactive = errs.ErrTableInactive
	ErrSlotConflict  = errs.ErrSlotConflict
)
