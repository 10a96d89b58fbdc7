package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"saleshub-cli/internal/model"
	"saleshub-cli/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (*DepartmentService, *SellerService) {
	t.Helper()
	db, err := store.Store{Dir: t.TempDir()}.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDepartmentServiceFromDB(db), NewSellerServiceFromDB(db)
}

func TestDepartmentService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert new and update existing", func(t *testing.T) {
		deps, _ := newServices(t)
		d, err := deps.Save(ctx, model.Department{Name: " Electronics "})
		require.NoError(t, err)
		assert.Equal(t, "Electronics", d.Name)

		d.Name = "Home Electronics"
		d2, err := deps.Save(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, d.ID, d2.ID)

		all, err := deps.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Home Electronics", all[0].Name)
	})

	t.Run("Should reject blank and overlong names", func(t *testing.T) {
		deps, _ := newServices(t)
		_, err := deps.Save(ctx, model.Department{Name: "   "})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "is required", ve.Fields["Name"])

		long := make([]byte, 61)
		for i := range long {
			long[i] = 'x'
		}
		_, err = deps.Save(ctx, model.Department{Name: string(long)})
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Error(), "name must be at most 60 characters")
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with a constraint error while sellers exist", func(t *testing.T) {
		deps, sellers := newServices(t)
		d, err := deps.Save(ctx, model.Department{Name: "Books"})
		require.NoError(t, err)
		_, err = sellers.Save(ctx, validSeller(d.ID))
		require.NoError(t, err)

		err = deps.Delete(ctx, d)
		assert.True(t, errors.Is(err, store.ErrConstraint), "got %v", err)
	})
}

func validSeller(departmentID int64) model.Seller {
	return model.Seller{
		Name:         "Bob Brown",
		Email:        "bob@example.com",
		BirthDate:    time.Date(1998, 4, 21, 0, 0, 0, 0, time.UTC),
		BaseSalary:   decimal.RequireFromString("1000"),
		DepartmentID: departmentID,
	}
}

func TestSellerService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should validate required fields and salary sign", func(t *testing.T) {
		_, sellers := newServices(t)
		s := model.Seller{Email: "not-an-email", BaseSalary: decimal.NewFromInt(-1)}
		_, err := sellers.Save(ctx, s)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "is required", ve.Fields["Name"])
		assert.Equal(t, "must be a valid email address", ve.Fields["Email"])
		assert.Equal(t, "is required", ve.Fields["BirthDate"])
		assert.Equal(t, "must be selected", ve.Fields["DepartmentID"])
		assert.Equal(t, "must not be negative", ve.Fields["BaseSalary"])
	})

	t.Run("Should report the derived quantity per department", func(t *testing.T) {
		deps, sellers := newServices(t)
		empty, err := deps.Save(ctx, model.Department{Name: "Empty"})
		require.NoError(t, err)
		three, err := deps.Save(ctx, model.Department{Name: "Three"})
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err := sellers.Save(ctx, validSeller(three.ID))
			require.NoError(t, err)
		}

		n, err := sellers.QuantityByDepartment(ctx, empty)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = sellers.QuantityByDepartment(ctx, three)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Should seed once and skip afterwards", func(t *testing.T) {
		deps, sellers := newServices(t)
		res, err := Seed(ctx, deps, sellers)
		require.NoError(t, err)
		assert.False(t, res.Skipped)
		assert.Equal(t, len(seedDepartments), res.Departments)
		assert.Equal(t, len(seedSellers), res.Sellers)

		res, err = Seed(ctx, deps, sellers)
		require.NoError(t, err)
		assert.True(t, res.Skipped)
	})
}
