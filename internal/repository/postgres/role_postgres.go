package postgres

import (
	"context"
	"database/sql"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// RolePostgres is the PostgreSQL adapter for roles.
type RolePostgres struct {
	t table[model.Role]
}

func NewRolePostgres(db *sql.DB) *RolePostgres {
	return &RolePostgres{t: table[model.Role]{
		db:      db,
		name:    "roles",
		columns: "id, name, description, is_active",
		scan:    scanRole,
	}}
}

var _ repository.RoleRepository = (*RolePostgres)(nil)

func scanRole(row scanner) (*model.Role, error) {
	var r model.Role
	if err := row.Scan(&r.ID, &r.Name, &r.Description, &r.IsActive); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RolePostgres) FindAll(ctx context.Context) ([]model.Role, error) {
	return r.t.findAll(ctx)
}

func (r *RolePostgres) FindOne(ctx context.Context, id int64) (*model.Role, error) {
	return r.t.findOne(ctx, id)
}

func (r *RolePostgres) Insert(ctx context.Context, in model.RoleCreate) (*model.Role, error) {
	return r.t.insert(ctx, []string{"name", "description"}, in.Name, in.Description)
}

func (r *RolePostgres) Update(ctx context.Context, id int64, patch model.RolePatch) (*model.Role, error) {
	var a assignments
	if patch.Name.Present() {
		a.set("name", patch.Name.Value)
	}
	if patch.Description.Present() {
		a.set("description", patch.Description.Value)
	}
	return r.t.update(ctx, id, a)
}

func (r *RolePostgres) SoftDelete(ctx context.Context, id int64) error {
	return r.t.softDelete(ctx, id)
}
