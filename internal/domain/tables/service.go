package tables

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"table-reservations-go/internal/domain/errs"
)

const (
	MessageCreated = "Table created"
	MessageUpdated = "Table updated"
	MessageDeleted = "Table deleted"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) List(ctx context.Context) ([]Table, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	return items, nil
}

// GetByID returns nil without error when the table does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (*Table, error) {
	table, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			return nil, nil
		}
		return nil, errs.Storage(err)
	}
	return table, nil
}

func (s *Service) Create(ctx context.Context, input CreateTableInput) (*Result, error) {
	if input.Seats == nil {
		return nil, errs.MissingField("seats")
	}
	if input.Active == nil {
		return nil, errs.MissingField("active")
	}
	if err := s.validate.Var(*input.Seats, "gt=0"); err != nil {
		return nil, errs.InvalidField("seats", err)
	}

	table := Table{
		Seats:  *input.Seats,
		Active: *input.Active,
	}
	if err := s.repo.Create(ctx, &table); err != nil {
		return nil, errs.Storage(err)
	}

	return &Result{Message: MessageCreated, Content: &table}, nil
}

// ToggleActive flips the table between active and inactive. It is the only
// way the active flag changes after creation.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*Result, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil || current == nil {
		return nil, err
	}

	if err := s.repo.UpdateActive(ctx, id, !current.Active); err != nil {
		return nil, errs.Storage(err)
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}

	return &Result{Message: MessageUpdated, Content: updated}, nil
}

// Delete returns the snapshot taken before the row was removed, or nil when
// there was nothing to delete.
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
