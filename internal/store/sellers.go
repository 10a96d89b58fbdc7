package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"saleshub-cli/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/shopspring/decimal"
)

// SellerRepo persists sellers in the seller table.
type SellerRepo struct{ db *sql.DB }

// sellerRow is the scan target; dates and amounts are stored as TEXT.
type sellerRow struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	BirthDate      string `db:"birth_date"`
	BaseSalary     string `db:"base_salary"`
	DepartmentID   int64  `db:"department_id"`
	DepartmentName string `db:"department_name"`
}

func (r sellerRow) toModel() (model.Seller, error) {
	bd, err := model.ParseDate(r.BirthDate)
	if err != nil {
		return model.Seller{}, fmt.Errorf("seller %d: %w", r.ID, err)
	}
	sal := decimal.Zero
	if s := strings.TrimSpace(r.BaseSalary); s != "" {
		sal, err = decimal.NewFromString(s)
		if err != nil {
			return model.Seller{}, fmt.Errorf("seller %d: invalid base salary %q: %w", r.ID, s, err)
		}
	}
	return model.Seller{
		ID:             r.ID,
		Name:           r.Name,
		Email:          r.Email,
		BirthDate:      bd,
		BaseSalary:     sal,
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
	}, nil
}

func sellerSelect() sq.SelectBuilder {
	return sq.Select(
		"s.id AS id",
		"s.name AS name",
		"s.email AS email",
		"s.birth_date AS birth_date",
		"s.base_salary AS base_salary",
		"s.department_id AS department_id",
		"d.name AS department_name",
	).
		From("seller s").
		Join("department d ON d.id = s.department_id")
}

func (r *SellerRepo) query(ctx context.Context, b sq.SelectBuilder) ([]model.Seller, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, classify("store: build seller query", err)
	}
	var rows []sellerRow
	if err := sqlscan.Select(ctx, r.db, &rows, q, args...); err != nil {
		return nil, classify("store: list sellers", err)
	}
	out := make([]model.Seller, 0, len(rows))
	for _, row := range rows {
		s, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SellerRepo) FindAll(ctx context.Context) ([]model.Seller, error) {
	return r.query(ctx, sellerSelect().OrderBy("s.id"))
}

func (r *SellerRepo) FindByDepartment(ctx context.Context, departmentID int64) ([]model.Seller, error) {
	return r.query(ctx, sellerSelect().Where(sq.Eq{"s.department_id": departmentID}).OrderBy("s.name"))
}

func (r *SellerRepo) FindByID(ctx context.Context, id int64) (model.Seller, error) {
	out, err := r.query(ctx, sellerSelect().Where(sq.Eq{"s.id": id}))
	if err != nil {
		return model.Seller{}, err
	}
	if len(out) == 0 {
		return model.Seller{}, notFound("seller", id)
	}
	return out[0], nil
}

// CountByDepartment returns how many sellers reference the department.
func (r *SellerRepo) CountByDepartment(ctx context.Context, departmentID int64) (int, error) {
	q, args, err := sq.Select("COUNT(*)").From("seller").Where(sq.Eq{"department_id": departmentID}).ToSql()
	if err != nil {
		return 0, classify("store: build seller count", err)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, classify("store: count sellers", err)
	}
	return n, nil
}

func sellerValues(s model.Seller) map[string]any {
	return map[string]any{
		"name":          strings.TrimSpace(s.Name),
		"email":         strings.TrimSpace(s.Email),
		"birth_date":    model.FormatDate(s.BirthDate),
		"base_salary":   s.BaseSalary.StringFixed(2),
		"department_id": s.DepartmentID,
	}
}

func (r *SellerRepo) Insert(ctx context.Context, s model.Seller) (model.Seller, error) {
	q, args, err := sq.Insert("seller").SetMap(sellerValues(s)).ToSql()
	if err != nil {
		return model.Seller{}, classify("store: build seller insert", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return model.Seller{}, classify("store: insert seller", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Seller{}, classify("store: seller id", err)
	}
	return r.FindByID(ctx, id)
}

func (r *SellerRepo) Update(ctx context.Context, s model.Seller) (model.Seller, error) {
	q, args, err := sq.Update("seller").SetMap(sellerValues(s)).Where(sq.Eq{"id": s.ID}).ToSql()
	if err != nil {
		return model.Seller{}, classify("store: build seller update", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return model.Seller{}, classify("store: update seller", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Seller{}, classify("store: rows affected (update seller)", err)
	} else if n == 0 {
		return model.Seller{}, notFound("seller", s.ID)
	}
	return r.FindByID(ctx, s.ID)
}

func (r *SellerRepo) Delete(ctx context.Context, id int64) error {
	q, args, err := sq.Delete("seller").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return classify("store: build seller delete", err)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return classify("store: delete seller", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return classify("store: rows affected (delete seller)", err)
	} else if n == 0 {
		return notFound("seller", id)
	}
	return nil
}
