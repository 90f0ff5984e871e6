package reservations

import (
	"context"
	"errors"
	"strings"
	"time"

	"table-reservations-go/internal/domain/errs"
	"table-reservations-go/internal/domain/tables"
)

const (
	MessageCreated = "Reservation created"
	MessageUpdated = "Reservation updated"
	MessageDeleted = "Reservation deleted"
)

type Service struct {
	repo   Repository
	tables TableReader
}

func NewService(repo Repository, tableReader TableReader) *Service {
	return &Service{repo: repo, tables: tableReader}
}

func (s *Service) List(ctx context.Context) ([]Reservation, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return items, nil
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]Reservation, error) {
	day, ok, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Reservation{}, nil
	}

	items, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return items, nil
}

// GetByID returns nil without error when the reservation does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			return nil, nil
		}
		return nil, errs.Storage(err)
	}
	return reservation, nil
}

// Create runs the booking checks in a fixed order and stops at the first
// failure: required fields, instant format, table existence, table activity,
// then slot availability. Nothing is written unless every check passes.
func (s *Service) Create(ctx context.Context, input CreateReservationInput) (*Result, error) {
	if input.TableID == 0 {
		return nil, errs.MissingField("table_id")
	}
	name := strings.TrimSpace(input.CostumerName)
	if name == "" {
		return nil, errs.MissingField("costumer_name")
	}
	if input.DateTime == "" {
		return nil, errs.MissingField("date_time")
	}

	at, err := ParseDateTime(input.DateTime)
	if err != nil {
		return nil, err
	}

	table, err := s.tables.GetByID(ctx, input.TableID)
	if err != nil {
		if errors.Is(err, tables.ErrTableNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, errs.Storage(err)
	}
	if !table.Active {
		return nil, ErrTableInactive
	}

	_, err = s.repo.GetByTableAndDateTime(ctx, input.TableID, at)
	switch {
	case err == nil:
		return nil, ErrSlotConflict
	case !errors.Is(err, ErrReservationNotFound):
		return nil, errs.Storage(err)
	}

	reservation := Reservation{
		TableID:      input.TableID,
		CostumerName: name,
		DateTime:     at,
	}
	if err := s.repo.Create(ctx, &reservation); err != nil {
		return nil, errs.Storage(err)
	}

	return &Result{Message: MessageCreated, Content: &reservation}, nil
}

// Update patches the supplied fields over the stored record. It does not
// re-check the table or the slot; only an unparseable date_time is refused
// because the store keeps a typed instant.
func (s *Service) Update(ctx context.Context, id int64, input UpdateReservationInput) (*Result, error) {
	var patchedAt *time.Time
	if input.DateTime != nil {
		at, err := ParseDateTime(*input.DateTime)
		if err != nil {
			return nil, err
		}
		patchedAt = &at
	}

	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if input.TableID != nil {
		current.TableID = *input.TableID
	}
	if input.CostumerName != nil {
		current.CostumerName = strings.TrimSpace(*input.CostumerName)
	}
	if patchedAt != nil {
		current.DateTime = *patchedAt
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, errs.Storage(err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}

	return &Result{Message: MessageUpdated, Content: updated}, nil
}

// Delete returns the snapshot taken before removal, or nil when there was
// nothing to delete.
func (s *Service) Delete(ctx context.Context, id int64) (*Result, error) {
	snapshot, err := s.GetByID(ctx, id)
	if err != nil || snapshot == nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, errs.Storage(err)
	}
	if !deleted {
		return nil, nil
	}

	return &Result{Message: MessageDeleted, Content: snapshot}, nil
}

// ListAvailableTables returns the active tables with no reservation on the
// given UTC date.
func (s *Service) ListAvailableTables(ctx context.Context, date string) ([]tables.Table, error) {
	day, ok, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	all, err := s.tables.List(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}

	booked := make(map[int64]struct{})
	if ok {
		items, err := s.repo.ListByDate(ctx, day)
		if err != nil {
			return nil, errs.Storage(err)
		}
		for _, reservation := range items {
			booked[reservation.TableID] = struct{}{}
		}
	}

	available := make([]tables.Table, 0, len(all))
	for _, table := range all {
		if !table.Active {
			continue
		}
		if _, taken := booked[table.ID]; taken {
			continue
		}
		available = append(available, table)
	}

	return available, nil
}
