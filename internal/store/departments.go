package store

import (
	"context"
	"database/sql"
	"strings"

	"saleshub-cli/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

// DepartmentRepo persists departments in the department table.
type DepartmentRepo struct{ db *sql.DB }

func departmentSelect() sq.SelectBuilder {
	return sq.Select("id", "name").From("department")
}

func (r *DepartmentRepo) FindAll(ctx context.Context) ([]model.Department, error) {
	q, args, err := departmentSelect().OrderBy("id").ToSql()
	if err != nil {
		return nil, classify("store: build department query", err)
	}
	out := []model.Department{}
	if err := sqlscan.Select(ctx, r.db, &out, q, args...); err != nil {
		return nil, classify("store: list departments", err)
	}
	return out, nil
}

func (r *DepartmentRepo) FindByID(ctx context.Context, id int64) (model.Department, error) {
	q, args, err := departmentSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Department{}, classify("store: build department query", err)
	}
	var d model.Department
	if err := sqlscan.Get(ctx, r.db, &d, q, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Department{}, notFound("department", id)
		}
		return model.Department{}, classify("store: get department", err)
	}
	return d, nil
}

func (r *DepartmentRepo) Insert(ctx context.Context, d model.Department) (model.Department, error) {
	q, args, err := sq.Insert("department").Columns("name").Values(strings.TrimSpace(d.Name)).ToSql()
	if err != nil {
		return model.Department{}, classify("store: build department insert", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return model.Department{}, classify("store: insert department", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Department{}, classify("store: department id", err)
	}
	d.ID = id
	d.Name = strings.TrimSpace(d.Name)
	return d, nil
}

func (r *DepartmentRepo) Update(ctx context.Context, d model.Department) (model.Department, error) {
	q, args, err := sq.Update("department").
		Set("name", strings.TrimSpace(d.Name)).
		Where(sq.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return model.Department{}, classify("store: build department update", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return model.Department{}, classify("store: update department", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Department{}, classify("store: rows affected (update department)", err)
	} else if n == 0 {
		return model.Department{}, notFound("department", d.ID)
	}
	d.Name = strings.TrimSpace(d.Name)
	return d, nil
}

// Delete removes a department. It fails with ErrConstraint while sellers still reference it.
func (r *DepartmentRepo) Delete(ctx context.Context, id int64) error {
	q, args, err := sq.Delete("department").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return classify("store: build department delete", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return classify("store: delete department", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return classify("store: rows affected (delete department)", err)
	} else if n == 0 {
		return notFound("department", id)
	}
	return nil
}
