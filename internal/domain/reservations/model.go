package reservations

import (
	"time"

	"table-reservations-go/internal/domain/tables"
)

// Reservation books one table at one instant. The (TableID, DateTime) pair
// carries a unique index so the store rejects a second booking of a slot even
// when two requests pass the service check concurrently.
type Reservation struct {
	ID           int64     `gorm:"primaryKey"`
	TableID      int64     `gorm:"not null;index;uniqueIndex:idx_reservations_slot"`
	CostumerName string    `gorm:"not null"`
	DateTime     time.Time `gorm:"not null;uniqueIndex:idx_reservations_slot"`

	// Table is never loaded; it declares the foreign key for AutoMigrate.
	Table *tables.Table `gorm:"foreignKey:TableID"`
}

type Result struct {
	Message string
	Content *Reservation
}

// CreateReservationInput mirrors the client payload; zero values mean the
// field was not supplied.
type CreateReservationInput struct {
	TableID      int64
	CostumerName string
	DateTime     string
}

// UpdateReservationInput is a partial patch. Nil fields are left unchanged.
type UpdateReservationInput struct {
	TableID      *int64
	CostumerName *string
	DateTime     *string
}
