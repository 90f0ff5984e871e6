package handler

import (
	"context"

	reservationsdomain "table-reservations-go/internal/domain/reservations"
	tablesdomain "table-reservations-go/internal/domain/tables"
	"table-reservations-go/pkg/logger"
)

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Tables       *tablesdomain.Service
	Reservations *reservationsdomain.Service
	db           Pinger
	log          logger.Logger
}

func New(tables *tablesdomain.Service, reservations *reservationsdomain.Service, db Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Tables:       tables,
		Reservations: reservations,
		db:           db,
		log:          log,
	}
}
