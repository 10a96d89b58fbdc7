package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saleshub-cli/internal/model"

	"github.com/shopspring/decimal"
)

type SeedResult struct {
	Departments int  `json:"departments"`
	Sellers     int  `json:"sellers"`
	Skipped     bool `json:"skipped"`
}

var seedDepartments = []string{"Computers", "Electronics", "Fashion", "Books"}

var seedSellers = []struct {
	name   string
	birth  string
	salary string
	dept   string
}{
	{"Bob Brown", "1998-04-21", "1000.00", "Computers"},
	{"Maria Green", "1979-12-31", "3500.00", "Electronics"},
	{"Alex Grey", "1988-01-15", "2200.00", "Computers"},
	{"Martha Red", "1993-11-30", "3000.00", "Books"},
	{"Donald Blue", "2000-01-09", "4000.00", "Fashion"},
	{"Alex Pink", "1997-03-04", "3000.00", "Electronics"},
}

// Seed fills an empty database with demo departments and sellers.
func Seed(ctx context.Context, deps *DepartmentService, sellers *SellerService) (SeedResult, error) {
	existing, err := deps.FindAll(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if len(existing) > 0 {
		return SeedResult{Skipped: true}, nil
	}

	byName := map[string]int64{}
	var res SeedResult
	for _, n := range seedDepartments {
		d, err := deps.Save(ctx, model.Department{Name: n})
		if err != nil {
			return res, fmt.Errorf("seed department %q: %w", n, err)
		}
		byName[n] = d.ID
		res.Departments++
	}
	for _, s := range seedSellers {
		bd, _ := time.Parse(model.DateLayout, s.birth)
		email := strings.ToLower(strings.ReplaceAll(s.name, " ", ".")) + "@example.com"
		_, err := sellers.Save(ctx, model.Seller{
			Name:         s.name,
			Email:        email,
			BirthDate:    bd,
			BaseSalary:   decimal.RequireFromString(s.salary),
			DepartmentID: byName[s.dept],
		})
		if err != nil {
			return res, fmt.Errorf("seed seller %q: %w", s.name, err)
		}
		res.Sellers++
	}
	return res, nil
}
