package service

import (
	"context"
	"errors"
	"fmt"

	ierr "agendaapi/internal/errors"
	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// Service exposes the soft-delete CRUD use cases of one resource. Every
// failure it returns is marked with a kind from internal/errors and carries
// a client-facing hint such as "User not found".
type Service[K comparable, R model.Record, C any, P model.Patch] interface {
	// Name is the singular resource name used in messages, e.g. "User".
	Name() string

	// List returns live records.
	List(ctx context.Context) ([]R, error)

	// Get returns a live record.
	Get(ctx context.Context, id K) (*R, error)

	// Create inserts a new record. Payload shape is checked by the caller.
	Create(ctx context.Context, in C) (*R, error)

	// Update applies a non-empty partial update to a live record.
	Update(ctx context.Context, id K, patch P) (*R, error)

	// Delete soft-deletes a live record.
	Delete(ctx context.Context, id K) error
}

type resourceService[K comparable, R model.Record, C any, P model.Patch] struct {
	name         string
	repo         repository.Store[K, R, C, P]
	beforeCreate func(*C) error
	beforeUpdate func(*P) error
}

func newResourceService[K comparable, R model.Record, C any, P model.Patch](name string, repo repository.Store[K, R, C, P]) *resourceService[K, R, C, P] {
	return &resourceService[K, R, C, P]{name: name, repo: repo}
}

func (s *resourceService[K, R, C, P]) Name() string {
	return s.name
}

func (s *resourceService[K, R, C, P]) List(ctx context.Context) ([]R, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return items, nil
}

func (s *resourceService[K, R, C, P]) Get(ctx context.Context, id K) (*R, error) {
	rec, err := s.repo.FindOne(ctx, id)
	if err != nil {
		return nil, s.mapErr(err, "get", id)
	}
	if !(*rec).Live() {
		return nil, ierr.NewError(fmt.Sprintf("%s %v is deleted", s.name, id)).
			WithHintf("%s not found", s.name).
			Mark(ierr.ErrNotFound)
	}
	return rec, nil
}

func (s *resourceService[K, R, C, P]) Create(ctx context.Context, in C) (*R, error) {
	if s.beforeCreate != nil {
		if err := s.beforeCreate(&in); err != nil {
			return nil, err
		}
	}
	rec, err := s.repo.Insert(ctx, in)
	if err != nil {
		if ierr.IsAlreadyExists(err) {
			return nil, ierr.WithError(err).
				WithHintf("%s already exists", s.name).
				Mark(ierr.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create %s: %w", s.name, err)
	}
	return rec, nil
}

func (s *resourceService[K, R, C, P]) Update(ctx context.Context, id K, patch P) (*R, error) {
	if err := patch.Validate(); err != nil {
		return nil, invalidPatch(err)
	}
	if s.beforeUpdate != nil {
		if err := s.beforeUpdate(&patch); err != nil {
			return nil, err
		}
	}
	rec, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.mapErr(err, "update", id)
	}
	return rec, nil
}

func (s *resourceService[K, R, C, P]) Delete(ctx context.Context, id K) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.mapErr(err, "delete", id)
	}
	return nil
}

func (s *resourceService[K, R, C, P]) mapErr(err error, op string, id K) error {
	switch {
	case ierr.IsNotFound(err):
		return ierr.WithError(err).
			WithHintf("%s not found", s.name).
			Mark(ierr.ErrNotFound)
	case ierr.IsAlreadyExists(err):
		return ierr.WithError(err).
			WithHintf("%s already exists", s.name).
			Mark(ierr.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s %s %v: %w", op, s.name, id, err)
	}
}

func invalidPatch(err error) error {
	var nullErr *model.NullFieldError
	switch {
	case errors.Is(err, model.ErrEmptyPatch):
		return ierr.WithError(err).WithHint("No fields to update").Mark(ierr.ErrValidation)
	case errors.As(err, &nullErr):
		return ierr.WithError(err).WithHint(nullErr.Error()).Mark(ierr.ErrValidation)
	default:
		return ierr.WithError(err).WithHint("Invalid update payload").Mark(ierr.ErrValidation)
	}
}
