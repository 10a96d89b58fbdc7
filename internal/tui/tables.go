package tui

import (
	"strconv"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	glyphEdit   = "✎"
	glyphDelete = "✕"
)

func newTable() table.Model {
	t := table.New(table.WithFocused(true))
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)
	t.SetStyles(st)
	return t
}

// Each column gets one cell of padding on both sides.
func flexWidth(total int, fixed []int, flex int) int {
	used := 0
	for _, w := range fixed {
		used += w + 2
	}
	used += flex * 2
	return max((total-used)/max(flex, 1), 8)
}

func departmentColumns(width int) []table.Column {
	fixed := []int{6, 8, 4, 6}
	name := flexWidth(width, fixed, 1)
	return []table.Column{
		{Title: "Id", Width: 6},
		{Title: "Name", Width: name},
		{Title: "Sellers", Width: 8},
		{Title: "Edit", Width: 4},
		{Title: "Delete", Width: 6},
	}
}

func departmentTableRows(rows []crud.Row[model.Department], width int) []table.Row {
	nameW := departmentColumns(width)[1].Width
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		count := "?"
		if r.HasCount {
			count = strconv.Itoa(r.Count)
		}
		out = append(out, table.Row{
			strconv.FormatInt(r.Entity.ID, 10),
			truncateCell(r.Entity.Name, nameW),
			count,
			glyphEdit,
			glyphDelete,
		})
	}
	return out
}

func sellerColumns(width int) []table.Column {
	fixed := []int{6, 10, 11, 14, 4, 6}
	flex := flexWidth(width, fixed, 2)
	return []table.Column{
		{Title: "Id", Width: 6},
		{Title: "Name", Width: flex},
		{Title: "Email", Width: flex},
		{Title: "Birth date", Width: 10},
		{Title: "Base salary", Width: 11},
		{Title: "Department", Width: 14},
		{Title: "Edit", Width: 4},
		{Title: "Delete", Width: 6},
	}
}

func sellerTableRows(rows []crud.Row[model.Seller], width int) []table.Row {
	cols := sellerColumns(width)
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		s := r.Entity
		out = append(out, table.Row{
			strconv.FormatInt(s.ID, 10),
			truncateCell(s.Name, cols[1].Width),
			truncateCell(s.Email, cols[2].Width),
			model.FormatDate(s.BirthDate),
			s.BaseSalary.StringFixed(2),
			truncateCell(s.DepartmentName, cols[5].Width),
			glyphEdit,
			glyphDelete,
		})
	}
	return out
}

// syncTables re-renders both tables from the bound rows, keeping the cursor
// in range.
func (m *appModel) syncTables() {
	h := m.bodyHeight()

	m.deptTable.SetColumns(departmentColumns(m.width))
	m.deptTable.SetRows(departmentTableRows(m.deptRows, m.width))
	m.deptTable.SetWidth(m.width)
	m.deptTable.SetHeight(h)
	clampCursor(&m.deptTable)

	m.sellerTable.SetColumns(sellerColumns(m.width))
	m.sellerTable.SetRows(sellerTableRows(m.sellerRows, m.width))
	m.sellerTable.SetWidth(m.width)
	m.sellerTable.SetHeight(h)
	clampCursor(&m.sellerTable)
}

func clampCursor(t *table.Model) {
	n := len(t.Rows())
	switch {
	case n == 0:
		t.SetCursor(0)
	case t.Cursor() >= n:
		t.SetCursor(n - 1)
	case t.Cursor() < 0:
		t.SetCursor(0)
	}
}
