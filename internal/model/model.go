package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage layout of calendar dates (birth dates).
const DateLayout = "2006-01-02"

const (
	DepartmentRefPrefix = "dept-"
	SellerRefPrefix     = "seller-"
)

type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=60"`
}

func (d Department) EntityID() int64    { return d.ID }
func (d Department) EntityName() string { return d.Name }

// Ref is the short reference accepted by the CLI shortcut (e.g. dept-7).
func (d Department) Ref() string { return fmt.Sprintf("%s%d", DepartmentRefPrefix, d.ID) }

type Seller struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name" validate:"required,max=60"`
	Email        string          `json:"email" validate:"required,email,max=120"`
	BirthDate    time.Time       `json:"birthDate" validate:"required"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
	DepartmentID int64           `json:"departmentId" validate:"required,gt=0"`

	// DepartmentName is filled by joined queries for display; it is never written.
	DepartmentName string `json:"departmentName,omitempty"`
}

func (s Seller) EntityID() int64    { return s.ID }
func (s Seller) EntityName() string { return s.Name }

func (s Seller) Ref() string { return fmt.Sprintf("%s%d", SellerRefPrefix, s.ID) }

// Department returns the seller's department as far as the seller row knows it.
func (s Seller) Department() Department {
	return Department{ID: s.DepartmentID, Name: s.DepartmentName}
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// ParseRef parses a CLI short reference such as "dept-7" or "seller-12".
func ParseRef(s string) (kind string, id int64, ok bool) {
	s = strings.TrimSpace(s)
	for _, p := range []string{DepartmentRefPrefix, SellerRefPrefix} {
		if !strings.HasPrefix(s, p) {
			continue
		}
		var n int64
		if _, err := fmt.Sscanf(s[len(p):], "%d", &n); err != nil || n <= 0 {
			return "", 0, false
		}
		if fmt.Sprintf("%d", n) != s[len(p):] {
			return "", 0, false
		}
		return strings.TrimSuffix(p, "-"), n, true
	}
	return "", 0, false
}
