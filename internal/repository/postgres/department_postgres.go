package postgres

import (
	"context"
	"database/sql"

	"agendaapi/internal/model"
	"agendaapi/internal/repository"
)

// DepartmentPostgres is the PostgreSQL adapter for departments.
type DepartmentPostgres struct {
	t table[model.Department]
}

func NewDepartmentPostgres(db *sql.DB) *DepartmentPostgres {
	return &DepartmentPostgres{t: table[model.Department]{
		db:      db,
		name:    "departments",
		columns: "id, name, location, is_active",
		scan:    scanDepartment,
	}}
}

var _ repository.DepartmentRepository = (*DepartmentPostgres)(nil)

func scanDepartment(row scanner) (*model.Department, error) {
	var d model.Department
	if err := row.Scan(&d.ID, &d.Name, &d.Location, &d.IsActive); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentPostgres) FindAll(ctx context.Context) ([]model.Department, error) {
	return r.t.findAll(ctx)
}

func (r *DepartmentPostgres) FindOne(ctx context.Context, id int64) (*model.Department, error) {
	return r.t.findOne(ctx, id)
}

func (r *DepartmentPostgres) Insert(ctx context.Context, in model.DepartmentCreate) (*model.Department, error) {
	return r.t.insert(ctx, []string{"name", "location"}, in.Name, in.Location)
}

func (r *DepartmentPostgres) Update(ctx context.Context, id int64, patch model.DepartmentPatch) (*model.Department, error) {
	var a assignments
	if patch.Name.Present() {
		a.set("name", patch.Name.Value)
	}
	if patch.Location.Present() {
		a.set("location", patch.Location.Value)
	}
	return r.t.update(ctx, id, a)
}

func (r *DepartmentPostgres) SoftDelete(ctx context.Context, id int64) error {
	return r.t.softDelete(ctx, id)
}
