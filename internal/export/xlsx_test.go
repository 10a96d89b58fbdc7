package export

import (
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"saleshub-cli/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSaveAs(t *testing.T) {
	t.Run("Should write both sheets with headers and rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.xlsx")
		deps := []DepartmentRow{
			{Department: model.Department{ID: 1, Name: "Appliances"}, Sellers: 0},
			{Department: model.Department{ID: 2, Name: "books"}, Sellers: 3},
		}
		sellers := []model.Seller{{
			ID:             5,
			Name:           "Bob Brown",
			Email:          "bob@example.com",
			BirthDate:      time.Date(1998, 4, 21, 0, 0, 0, 0, time.UTC),
			BaseSalary:     decimal.RequireFromString("1000.50"),
			DepartmentID:   2,
			DepartmentName: "books",
		}}
		require.NoError(t, SaveAs(path, deps, sellers))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{departmentsSheet, sellersSheet}, f.GetSheetList())

		rows, err := f.GetRows(departmentsSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Id", "Name", "Sellers"}, rows[0])
		assert.Equal(t, []string{"2", "books", "3"}, rows[2])

		srows, err := f.GetRows(sellersSheet)
		require.NoError(t, err)
		require.Len(t, srows, 2)
		assert.Equal(t, "Bob Brown", srows[1][1])
		assert.Equal(t, "1998-04-21", srows[1][3])
		assert.Equal(t, "books", srows[1][6])
		assert.Equal(t, "1000.50", srows[1][4])

		raw, err := f.GetCellValue(sellersSheet, "E2", excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, "1000.50", raw)
		typ, err := f.GetCellType(sellersSheet, "E2")
		require.NoError(t, err)
		assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	})
}

func TestWorkbook_SalaryKeepsCents(t *testing.T) {
	t.Run("Should write amounts that are not binary fractions exactly", func(t *testing.T) {
		sellers := []model.Seller{
			{ID: 1, Name: "A", BaseSalary: decimal.RequireFromString("0.10")},
			{ID: 2, Name: "B", BaseSalary: decimal.RequireFromString("1234567.89")},
			{ID: 3, Name: "C", BaseSalary: decimal.RequireFromString("2500")},
		}
		f, err := Workbook(nil, sellers)
		require.NoError(t, err)
		defer f.Close()

		for i, want := range []string{"0.10", "1234567.89", "2500.00"} {
			cell := salaryColumn + strconv.Itoa(i+2)
			raw, err := f.GetCellValue(sellersSheet, cell, excelize.Options{RawCellValue: true})
			require.NoError(t, err)
			assert.Equal(t, want, raw, cell)
		}
	})
}
