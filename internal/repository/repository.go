package repository

import (
	"context"

	"agendaapi/internal/model"
)

// Store is the storage adapter contract shared by every backend. K is the
// record identifier, R the stored record, C the create payload and P the
// partial-update payload.
//
// Adapters mark their failures with the kinds from internal/errors:
// ErrNotFound when no (live) record matches, ErrAlreadyExists when an
// identifier or unique column is taken.
type Store[K comparable, R model.Record, C any, P model.Patch] interface {
	// FindAll returns live records only. Relational and document stores
	// return them in insertion order.
	FindAll(ctx context.Context) ([]R, error)

	// FindOne returns the record whether it is live or soft-deleted.
	FindOne(ctx context.Context, id K) (*R, error)

	// Insert persists a new live record and returns it.
	Insert(ctx context.Context, in C) (*R, error)

	// Update applies the present fields of patch to the live record with id.
	Update(ctx context.Context, id K, patch P) (*R, error)

	// SoftDelete flips the liveness flag of the live record with id.
	SoftDelete(ctx context.Context, id K) error
}

type (
	UserRepository       = Store[int64, model.User, model.UserCreate, model.UserPatch]
	DepartmentRepository = Store[int64, model.Department, model.DepartmentCreate, model.DepartmentPatch]
	RoleRepository       = Store[int64, model.Role, model.RoleCreate, model.RolePatch]
	ContactRepository    = Store[string, model.Contact, model.ContactCreate, model.ContactPatch]
	EventRepository      = Store[string, model.Event, model.EventCreate, model.EventPatch]
	ConfigRepository     = Store[string, model.Config, model.ConfigCreate, model.ConfigPatch]
	SessionRepository    = Store[string, model.Session, model.SessionCreate, model.SessionPatch]
)
