package postgres

import (
	"context"
	"database/sql"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// UserPostgres is the PostgreSQL adapter for users.
type UserPostgres struct {
	t table[model.User]
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{t: table[model.User]{
		db:      db,
		name:    "users",
		columns: "id, name, email, password, is_active",
		scan:    scanUser,
	}}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(row scanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.IsActive); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserPostgres) FindAll(ctx context.Context) ([]model.User, error) {
	return r.t.findAll(ctx)
}

func (r *UserPostgres) FindOne(ctx context.Context, id int64) (*model.User, error) {
	return r.t.findOne(ctx, id)
}

// Insert expects in.Password to already be hashed.
func (r *UserPostgres) Insert(ctx context.Context, in model.UserCreate) (*model.User, error) {
	return r.t.insert(ctx, []string{"name", "email", "password"}, in.Name, in.Email, in.Password)
}

func (r *UserPostgres) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	var a assignments
	if patch.Name.Present() {
		a.set("name", patch.Name.Value)
	}
	if patch.Email.Present() {
		a.set("email", patch.Email.Value)
	}
	if patch.Password.Present() {
		a.set("password", patch.Password.Value)
	}
	return r.t.update(ctx, id, a)
}

func (r *UserPostgres) SoftDelete(ctx context.Context, id int64) error {
	return r.t.softDelete(ctx, id)
}
