package tables

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	tablesdomain "table-reservations-go/internal/domain/tables"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]tablesdomain.Table, error) {
	items := make([]tablesdomain.Table, 0)
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "tables: list")
	}
	return items, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*tablesdomain.Table, error) {
	var table tablesdomain.Table
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&table).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tablesdomain.ErrTableNotFound
		}
		return nil, pkgerrors.Wrapf(err, "tables: get %d", id)
	}
	return &table, nil
}

func (r *PostgresRepository) Create(ctx context.Context, table *tablesdomain.Table) error {
	if err := r.db.WithContext(ctx).Create(table).Error; err != nil {
		return pkgerrors.Wrap(err, "tables: insert")
	}
	return nil
}

func (r *PostgresRepository) UpdateActive(ctx context.Context, id int64, active bool) error {
	err := r.db.WithContext(ctx).
		Model(&tablesdomain.Table{}).
		Where("id = ?", id).
		Update("active", active).Error
	if err != nil {
		return pkgerrors.Wrapf(err, "tables: update %d", id)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&tablesdomain.Table{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return false, tablesdomain.ErrTableInUse
		}
		return false, pkgerrors.Wrapf(result.Error, "tables: delete %d", id)
	}
	return result.RowsAffected > 0, nil
}
