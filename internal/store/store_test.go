package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"saleshub-cli/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Store{Dir: t.TempDir()}.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBuildDSN(t *testing.T) {
	t.Run("Should enable pragmas per connection", func(t *testing.T) {
		d := buildDSN("/tmp/x.sqlite")
		assert.Contains(t, d, "file:/tmp/x.sqlite?")
		assert.Contains(t, d, "_pragma=foreign_keys%28ON%29")
		assert.Contains(t, d, "_pragma=journal_mode%28WAL%29")
		assert.Contains(t, d, "_pragma=busy_timeout%285000%29")
	})
}

func TestOpen(t *testing.T) {
	t.Run("Should create tables through migrations", func(t *testing.T) {
		db := openTestDB(t)
		rows, err := db.sql.QueryContext(context.Background(), "SELECT name FROM sqlite_master WHERE type = 'table'")
		require.NoError(t, err)
		defer rows.Close()
		expected := map[string]bool{"department": true, "seller": true}
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			delete(expected, name)
		}
		require.NoError(t, rows.Err())
		assert.Empty(t, expected)
	})
	t.Run("Should reopen an existing database", func(t *testing.T) {
		dir := t.TempDir()
		ctx := context.Background()
		db, err := Store{Dir: dir}.Open(ctx)
		require.NoError(t, err)
		_, err = db.Departments().Insert(ctx, model.Department{Name: "Books"})
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db2, err := Store{Dir: dir}.Open(ctx)
		require.NoError(t, err)
		defer db2.Close()
		all, err := db2.Departments().FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Books", all[0].Name)
		assert.FileExists(t, filepath.Join(dir, sqliteFileName))
	})
}

func TestDepartmentRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert, update, find and delete", func(t *testing.T) {
		repo := openTestDB(t).Departments()
		d, err := repo.Insert(ctx, model.Department{Name: "  Electronics "})
		require.NoError(t, err)
		assert.NotZero(t, d.ID)
		assert.Equal(t, "Electronics", d.Name)

		d.Name = "Computers"
		_, err = repo.Update(ctx, d)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Computers", got.Name)

		require.NoError(t, repo.Delete(ctx, d.ID))
		_, err = repo.FindByID(ctx, d.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should report missing rows as ErrNotFound", func(t *testing.T) {
		repo := openTestDB(t).Departments()
		assert.ErrorIs(t, repo.Delete(ctx, 99), ErrNotFound)
		_, err := repo.Update(ctx, model.Department{ID: 99, Name: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should refuse deleting a department that has sellers", func(t *testing.T) {
		db := openTestDB(t)
		d, err := db.Departments().Insert(ctx, model.Department{Name: "Books"})
		require.NoError(t, err)
		_, err = db.Sellers().Insert(ctx, testSeller("Bob", d.ID))
		require.NoError(t, err)

		err = db.Departments().Delete(ctx, d.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConstraint)

		all, err := db.Departments().FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func testSeller(name string, departmentID int64) model.Seller {
	return model.Seller{
		Name:         name,
		Email:        name + "@example.com",
		BirthDate:    time.Date(1990, 4, 21, 0, 0, 0, 0, time.UTC),
		BaseSalary:   decimal.RequireFromString("1500.50"),
		DepartmentID: departmentID,
	}
}

func TestSellerRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Should round-trip dates, amounts and the department name", func(t *testing.T) {
		db := openTestDB(t)
		d, err := db.Departments().Insert(ctx, model.Department{Name: "Fashion"})
		require.NoError(t, err)

		s, err := db.Sellers().Insert(ctx, testSeller("Alex", d.ID))
		require.NoError(t, err)
		assert.NotZero(t, s.ID)
		assert.Equal(t, "Fashion", s.DepartmentName)
		assert.Equal(t, "1990-04-21", model.FormatDate(s.BirthDate))
		assert.True(t, s.BaseSalary.Equal(decimal.RequireFromString("1500.5")))

		s.BaseSalary = decimal.RequireFromString("2000")
		s.Name = "Alexandra"
		s2, err := db.Sellers().Update(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", s2.Name)
		assert.Equal(t, "2000.00", s2.BaseSalary.StringFixed(2))
	})

	t.Run("Should count sellers per department", func(t *testing.T) {
		db := openTestDB(t)
		empty, err := db.Departments().Insert(ctx, model.Department{Name: "Empty"})
		require.NoError(t, err)
		busy, err := db.Departments().Insert(ctx, model.Department{Name: "Busy"})
		require.NoError(t, err)
		for _, n := range []string{"a", "b", "c"} {
			_, err := db.Sellers().Insert(ctx, testSeller(n, busy.ID))
			require.NoError(t, err)
		}

		n, err := db.Sellers().CountByDepartment(ctx, empty.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = db.Sellers().CountByDepartment(ctx, busy.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		list, err := db.Sellers().FindByDepartment(ctx, busy.ID)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("Should reject an unknown department", func(t *testing.T) {
		db := openTestDB(t)
		_, err := db.Sellers().Insert(ctx, testSeller("Ghost", 42))
		assert.ErrorIs(t, err, ErrConstraint)
	})
}

func TestResolveDir(t *testing.T) {
	t.Run("Should prefer the explicit dir", func(t *testing.T) {
		got, err := ResolveDir("/tmp/explicit", &GlobalConfig{DataDir: "/tmp/cfg"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/explicit", got)
	})
	t.Run("Should discover a project-local dir", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, dirName), 0o755))
		sub := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		found, ok := DiscoverDir(sub)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, dirName), found)
	})
}
