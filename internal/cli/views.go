package cli

import (
	"strconv"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"
)

type departmentView struct {
	ID      int64  `json:"id"`
	Ref     string `json:"ref"`
	Name    string `json:"name"`
	Sellers int    `json:"sellers"`
}

func newDepartmentView(d model.Department, sellers int) departmentView {
	return departmentView{ID: d.ID, Ref: d.Ref(), Name: d.Name, Sellers: sellers}
}

func (d departmentView) Header() []string { return departmentList{}.Header() }
func (d departmentView) Rows() [][]string { return departmentList{d}.Rows() }

type departmentList []departmentView

func (l departmentList) Header() []string { return []string{"Id", "Name", "Sellers"} }

func (l departmentList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, d := range l {
		rows = append(rows, []string{strconv.FormatInt(d.ID, 10), d.Name, strconv.Itoa(d.Sellers)})
	}
	return rows
}

func departmentViews(rows []crud.Row[model.Department]) departmentList {
	out := make(departmentList, 0, len(rows))
	for _, r := range rows {
		out = append(out, newDepartmentView(r.Entity, r.Count))
	}
	return out
}

type sellerView struct {
	model.Seller
	Ref string `json:"ref"`
}

func newSellerView(s model.Seller) sellerView {
	return sellerView{Seller: s, Ref: s.Ref()}
}

func (v sellerView) Header() []string { return sellerList{}.Header() }
func (v sellerView) Rows() [][]string { return sellerList{v}.Rows() }

type sellerList []sellerView

func sellerViews(list []model.Seller) sellerList {
	out := make(sellerList, 0, len(list))
	for _, s := range list {
		out = append(out, newSellerView(s))
	}
	return out
}

func (l sellerList) Header() []string {
	return []string{"Id", "Name", "Email", "Birth date", "Base salary", "Department"}
}

func (l sellerList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			s.Email,
			model.FormatDate(s.BirthDate),
			s.BaseSalary.StringFixed(2),
			s.DepartmentName,
		})
	}
	return rows
}

type deleteResult struct {
	Kind    string `json:"kind"`
	ID      int64  `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (r deleteResult) Header() []string { return []string{"Kind", "Id", "Deleted"} }

func (r deleteResult) Rows() [][]string {
	return [][]string{{r.Kind, strconv.FormatInt(r.ID, 10), strconv.FormatBool(r.Deleted)}}
}
