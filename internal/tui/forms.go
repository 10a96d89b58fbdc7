package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"saleshub-cli/internal/crud"
	"saleshub-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

var errNoDepartments = errors.New("no departments yet; create one first")

// formResources holds what the seller form needs besides the seller itself.
// It is filled by the dialog's prepare step.
type formResources struct {
	departments []model.Department
}

func (r *formResources) prepareSeller(deps crud.Lister[model.Department]) crud.PrepareFunc[model.Seller] {
	return func(ctx context.Context, _ model.Seller) error {
		list, err := deps.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("load departments: %w", err)
		}
		if len(list) == 0 {
			return errNoDepartments
		}
		crud.SortByName(list)
		r.departments = list
		return nil
	}
}

type departmentDraft struct {
	id   int64
	name string
}

func newDepartmentDraft(d model.Department) *departmentDraft {
	return &departmentDraft{id: d.ID, name: d.Name}
}

func (d *departmentDraft) entity() model.Department {
	return model.Department{ID: d.id, Name: strings.TrimSpace(d.name)}
}

type sellerDraft struct {
	id           int64
	name         string
	email        string
	birthDate    string
	baseSalary   string
	departmentID int64
}

func newSellerDraft(s model.Seller) *sellerDraft {
	d := &sellerDraft{
		id:           s.ID,
		name:         s.Name,
		email:        s.Email,
		birthDate:    model.FormatDate(s.BirthDate),
		departmentID: s.DepartmentID,
	}
	if s.ID != 0 {
		d.baseSalary = s.BaseSalary.StringFixed(2)
	}
	return d
}

func (d *sellerDraft) entity() (model.Seller, error) {
	birth, err := model.ParseDate(d.birthDate)
	if err != nil {
		return model.Seller{}, fmt.Errorf("birth date: %w", err)
	}
	salary, err := parseSalary(d.baseSalary)
	if err != nil {
		return model.Seller{}, err
	}
	return model.Seller{
		ID:           d.id,
		Name:         strings.TrimSpace(d.name),
		Email:        strings.TrimSpace(d.email),
		BirthDate:    birth,
		BaseSalary:   salary,
		DepartmentID: d.departmentID,
	}, nil
}

func parseSalary(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("base salary: %q is not a number", s)
	}
	return v, nil
}

func requiredField(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("birth date is required")
	}
	if _, err := model.ParseDate(s); err != nil {
		return fmt.Errorf("use %s", model.DateLayout)
	}
	return nil
}

func validSalary(s string) error {
	v, err := parseSalary(s)
	if err != nil {
		return errors.New("must be a number")
	}
	if v.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

// formKeyMap leaves esc to the app so it can cancel the dialog.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"))
	return km
}

func newDepartmentForm(d *departmentDraft, width int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(60).
				Value(&d.name).
				Validate(requiredField("name")),
		),
	)
	return form.
		WithKeyMap(formKeyMap()).
		WithShowHelp(true).
		WithWidth(width)
}

func newSellerForm(d *sellerDraft, departments []model.Department, width int) *huh.Form {
	opts := make([]huh.Option[int64], 0, len(departments))
	for _, dep := range departments {
		opts = append(opts, huh.NewOption(dep.Name, dep.ID))
	}
	if d.departmentID == 0 && len(departments) > 0 {
		d.departmentID = departments[0].ID
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(60).
				Value(&d.name).
				Validate(requiredField("name")),
			huh.NewInput().
				Title("Email").
				CharLimit(120).
				Value(&d.email).
				Validate(requiredField("email")),
			huh.NewInput().
				Title("Birth date").
				Placeholder(model.DateLayout).
				Value(&d.birthDate).
				Validate(validDate),
			huh.NewInput().
				Title("Base salary").
				Placeholder("0.00").
				Value(&d.baseSalary).
				Validate(validSalary),
			huh.NewSelect[int64]().
				Title("Department").
				Options(opts...).
				Value(&d.departmentID),
		),
	)
	return form.
		WithKeyMap(formKeyMap()).
		WithShowHelp(true).
		WithWidth(width)
}
