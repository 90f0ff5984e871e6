package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	reservationsdomain "table-reservations-go/internal/domain/reservations"
	tablesdomain "table-reservations-go/internal/domain/tables"
	"table-reservations-go/pkg/logger"
)

var sampleTables = []tablesdomain.Table{
	{Seats: 2, Active: true},
	{Seats: 4, Active: true},
	{Seats: 4, Active: true},
	{Seats: 6, Active: true},
	{Seats: 8, Active: false},
}

var sampleReservations = []struct {
	tableIndex int
	name       string
	at         time.Time
}{
	{0, "Duda", time.Date(2026, 1, 25, 19, 0, 0, 0, time.UTC)},
	{1, "Antonio", time.Date(2026, 1, 25, 20, 30, 0, 0, time.UTC)},
	{3, "Ana", time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)},
}

// Populate seeds sample tables and reservations into an empty database. It
// does nothing when any table already exists.
func Populate(db *gorm.DB, log logger.Logger) error {
	var count int64
	if err := db.Model(&tablesdomain.Table{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count tables: %w", err)
	}
	if count > 0 {
		log.Info("populate: tables already present, skipping", "count", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		created := make([]tablesdomain.Table, len(sampleTables))
		copy(created, sampleTables)
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("insert tables: %w", err)
		}

		reservations := make([]reservationsdomain.Reservation, 0, len(sampleReservations))
		for _, sample := range sampleReservations {
			reservations = append(reservations, reservationsdomain.Reservation{
				TableID:      created[sample.tableIndex].ID,
				CostumerName: sample.name,
				DateTime:     sample.at,
			})
		}
		if err := tx.Create(&reservations).Error; err != nil {
			return fmt.Errorf("insert reservations: %w", err)
		}

		log.Info("populate: database populated", "tables", len(created), "reservations", len(reservations))
		return nil
	})
}
