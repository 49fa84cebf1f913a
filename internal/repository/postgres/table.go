package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	ierr "agendaapi/internal/errors"
)

// uniqueViolation is the SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

type scanner interface {
	Scan(dest ...any) error
}

// table holds the queries shared by every soft-delete table: an
// auto-increment "id" primary key and an "is_active" liveness column.
// Table and column names are compile-time constants, never user input.
type table[R any] struct {
	db      *sql.DB
	name    string
	columns string
	scan    func(scanner) (*R, error)
}

func (t table[R]) findAll(ctx context.Context) ([]R, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE is_active = TRUE ORDER BY id`, t.columns, t.name)
	rows, err := t.db.QueryContext(ctx, q)
	if err != nil {
		return nil, mapError(err, "list "+t.name)
	}
	defer rows.Close()

	items := make([]R, 0)
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, mapError(err, "scan "+t.name)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list "+t.name)
	}
	return items, nil
}

func (t table[R]) findOne(ctx context.Context, id int64) (*R, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns, t.name)
	rec, err := t.scan(t.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("find %s %d", t.name, id))
	}
	return rec, nil
}

func (t table[R]) findLive(ctx context.Context, id int64) (*R, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND is_active = TRUE`, t.columns, t.name)
	rec, err := t.scan(t.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("find %s %d", t.name, id))
	}
	return rec, nil
}

// insert stores a new live row. cols and args must line up.
func (t table[R]) insert(ctx context.Context, cols []string, args ...any) (*R, error) {
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	q := fmt.Sprintf(`INSERT INTO %s (%s, is_active) VALUES (%s, TRUE) RETURNING %s`,
		t.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), t.columns)

	rec, err := t.scan(t.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, mapError(err, "insert "+t.name)
	}
	return rec, nil
}

// update writes the assignments to the live row with id. With no
// assignments it returns the live row unchanged.
func (t table[R]) update(ctx context.Context, id int64, a assignments) (*R, error) {
	if a.empty() {
		return t.findLive(ctx, id)
	}
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d AND is_active = TRUE RETURNING %s`,
		t.name, a.clause(), len(a.args)+1, t.columns)

	rec, err := t.scan(t.db.QueryRowContext(ctx, q, append(a.args, id)...))
	if err != nil {
		return nil, mapError(err, fmt.Sprintf("update %s %d", t.name, id))
	}
	return rec, nil
}

func (t table[R]) softDelete(ctx context.Context, id int64) error {
	q := fmt.Sprintf(`UPDATE %s SET is_active = FALSE WHERE id = $1 AND is_active = TRUE`, t.name)
	res, err := t.db.ExecContext(ctx, q, id)
	if err != nil {
		return mapError(err, fmt.Sprintf("delete %s %d", t.name, id))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, fmt.Sprintf("delete %s %d", t.name, id))
	}
	if n == 0 {
		return ierr.NewError(fmt.Sprintf("no live %s row with id %d", t.name, id)).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// assignments accumulates "col = $n" pairs for a partial UPDATE.
type assignments struct {
	cols []string
	args []any
}

func (a *assignments) set(col string, v any) {
	a.args = append(a.args, v)
	a.cols = append(a.cols, fmt.Sprintf("%s = $%d", col, len(a.args)))
}

func (a assignments) empty() bool {
	return len(a.cols) == 0
}

func (a assignments) clause() string {
	return strings.Join(a.cols, ", ")
}

func mapError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).WithMessage(op).Mark(ierr.ErrDatabase)
}
