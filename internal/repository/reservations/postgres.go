package reservations

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	reservationsdomain "table-reservations-go/internal/domain/reservations"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]reservationsdomain.Reservation, error) {
	var items []reservationsdomain.Reservation
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "reservations: list")
	}
	return normalize(items), nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*reservationsdomain.Reservation, error) {
	var reservation reservationsdomain.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reservationsdomain.ErrReservationNotFound
		}
		return nil, pkgerrors.Wrapf(err, "reservations: get %d", id)
	}
	reservation.DateTime = reservation.DateTime.UTC()
	return &reservation, nil
}

func (r *PostgresRepository) ListByDate(ctx context.Context, day time.Time) ([]reservationsdomain.Reservation, error) {
	start := day.UTC()
	end := start.Add(24 * time.Hour)

	var items []reservationsdomain.Reservation
	if err := r.db.WithContext(ctx).
		Where("date_time >= ? AND date_time < ?", start, end).
		Order("date_time asc, id asc").
		Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "reservations: list by date %s", start.Format(reservationsdomain.DateLayout))
	}
	return normalize(items), nil
}

func (r *PostgresRepository) GetByTableAndDateTime(ctx context.Context, tableID int64, at time.Time) (*reservationsdomain.Reservation, error) {
	var reservation reservationsdomain.Reservation
	if err := r.db.WithContext(ctx).
		Where("table_id = ? AND date_time = ?", tableID, at.UTC()).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reservationsdomain.ErrReservationNotFound
		}
		return nil, pkgerrors.Wrap(err, "reservations: get by slot")
	}
	reservation.DateTime = reservation.DateTime.UTC()
	return &reservation, nil
}

func (r *PostgresRepository) Create(ctx context.Context, reservation *reservationsdomain.Reservation) error {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return translateWriteError(err, "reservations: insert")
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, reservation *reservationsdomain.Reservation) error {
	err := r.db.WithContext(ctx).
		Model(&reservationsdomain.Reservation{}).
		Where("id = ?", reservation.ID).
		Updates(map[string]interface{}{
			"table_id":      reservation.TableID,
			"costumer_name": reservation.CostumerName,
			"date_time":     reservation.DateTime.UTC(),
		}).Error
	if err != nil {
		return translateWriteError(err, "reservations: update")
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&reservationsdomain.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return false, pkgerrors.Wrapf(result.Error, "reservations: delete %d", id)
	}
	return result.RowsAffected > 0, nil
}

// translateWriteError relies on gorm's TranslateError option being enabled
// on the connection.
func translateWriteError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return reservationsdomain.ErrSlotConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return reservationsdomain.ErrTableNotFound
	default:
		return pkgerrors.Wrap(err, op)
	}
}

func normalize(items []reservationsdomain.Reservation) []reservationsdomain.Reservation {
	if items == nil {
		return []reservationsdomain.Reservation{}
	}
	for i := range items {
		items[i].DateTime = items[i].DateTime.UTC()
	}
	return items
}
