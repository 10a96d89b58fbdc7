package export

import (
	"fmt"
	"io"
	"strconv"

	"saleshub-cli/internal/model"

	"github.com/xuri/excelize/v2"
)

const (
	departmentsSheet = "Departments"
	sellersSheet     = "Sellers"
)

// DepartmentRow is a department with its derived seller count.
type DepartmentRow struct {
	Department model.Department
	Sellers    int
}

// Workbook builds a two-sheet workbook: departments (with seller counts) and sellers.
func Workbook(deps []DepartmentRow, sellers []model.Seller) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", departmentsSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(sellersSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	depRows := make([][]any, 0, len(deps))
	for _, d := range deps {
		depRows = append(depRows, []any{d.Department.ID, d.Department.Name, d.Sellers})
	}
	if err := writeSheet(f, departmentsSheet, bold, []string{"Id", "Name", "Sellers"}, depRows); err != nil {
		_ = f.Close()
		return nil, err
	}

	sellerRows := make([][]any, 0, len(sellers))
	for _, s := range sellers {
		sellerRows = append(sellerRows, []any{
			s.ID, s.Name, s.Email, model.FormatDate(s.BirthDate), nil, s.DepartmentID, s.DepartmentName,
		})
	}
	hdr := []string{"Id", "Name", "Email", "Birth date", "Base salary", "Department id", "Department"}
	if err := writeSheet(f, sellersSheet, bold, hdr, sellerRows); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSalaries(f, sellers); err != nil {
		_ = f.Close()
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, header []string, rows [][]any) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("export: %s header: %w", sheet, err)
		}
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for r, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(r+2), &row); err != nil {
			return fmt.Errorf("export: %s row %d: %w", sheet, r+2, err)
		}
	}
	return nil
}

// salaryColumn is the "Base salary" column of the sellers sheet.
const salaryColumn = "E"

// writeSalaries stores each salary as a number whose cell text is exactly
// StringFixed(2), formatted 0.00.
func writeSalaries(f *excelize.File, sellers []model.Seller) error {
	if len(sellers) == 0 {
		return nil
	}
	cents, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	for i, s := range sellers {
		cell := salaryColumn + strconv.Itoa(i+2)
		want := s.BaseSalary.StringFixed(2)
		v := s.BaseSalary.Round(2).InexactFloat64()
		if strconv.FormatFloat(v, 'f', 2, 64) != want {
			return fmt.Errorf("export: seller %d: salary %s does not fit a cell", s.ID, want)
		}
		if err := f.SetCellFloat(sellersSheet, cell, v, 2, 64); err != nil {
			return fmt.Errorf("export: seller %d salary: %w", s.ID, err)
		}
	}
	last := salaryColumn + strconv.Itoa(len(sellers)+1)
	return f.SetCellStyle(sellersSheet, salaryColumn+"2", last, cents)
}

// WriteTo writes the workbook to w.
func WriteTo(w io.Writer, deps []DepartmentRow, sellers []model.Seller) error {
	f, err := Workbook(deps, sellers)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveAs writes the workbook to path.
func SaveAs(path string, deps []DepartmentRow, sellers []model.Seller) error {
	f, err := Workbook(deps, sellers)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}
