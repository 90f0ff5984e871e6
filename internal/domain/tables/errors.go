package tables

import "table-reservations-go/internal/domain/errs"

var (
	ErrTableNotFound = errs.ErrTableNotFound
	ErrTableInUse    = errs.ErrTableInUse
)
