package service

import (
	"context"
	"strings"

	"saleshub-cli/internal/logging"
	"saleshub-cli/internal/model"
	"saleshub-cli/internal/store"
)

type SellerRepository interface {
	FindAll(ctx context.Context) ([]model.Seller, error)
	FindByID(ctx context.Context, id int64) (model.Seller, error)
	FindByDepartment(ctx context.Context, departmentID int64) ([]model.Seller, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int, error)
	Insert(ctx context.Context, s model.Seller) (model.Seller, error)
	Update(ctx context.Context, s model.Seller) (model.Seller, error)
	Delete(ctx context.Context, id int64) error
}

type SellerService struct {
	repo SellerRepository
}

func NewSellerService(repo SellerRepository) *SellerService {
	return &SellerService{repo: repo}
}

func NewSellerServiceFromDB(db *store.DB) *SellerService {
	return NewSellerService(db.Sellers())
}

func (s *SellerService) FindAll(ctx context.Context) ([]model.Seller, error) {
	return s.repo.FindAll(ctx)
}

func (s *SellerService) FindByID(ctx context.Context, id int64) (model.Seller, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SellerService) FindByDepartment(ctx context.Context, d model.Department) ([]model.Seller, error) {
	return s.repo.FindByDepartment(ctx, d.ID)
}

// QuantityByDepartment is the derived seller count shown next to each department.
func (s *SellerService) QuantityByDepartment(ctx context.Context, d model.Department) (int, error) {
	return s.repo.CountByDepartment(ctx, d.ID)
}

func (s *SellerService) Save(ctx context.Context, sl model.Seller) (model.Seller, error) {
	sl.Name = strings.TrimSpace(sl.Name)
	sl.Email = strings.TrimSpace(sl.Email)
	ve := &ValidationError{}
	checkStruct(sl, ve)
	if sl.BaseSalary.IsNegative() {
		ve.add("BaseSalary", "must not be negative")
	}
	if err := ve.orNil(); err != nil {
		return model.Seller{}, err
	}
	log := logging.FromContext(ctx)
	if sl.ID == 0 {
		out, err := s.repo.Insert(ctx, sl)
		if err == nil {
			log.Debug("seller created", "id", out.ID, "department", out.DepartmentID)
		}
		return out, err
	}
	out, err := s.repo.Update(ctx, sl)
	if err == nil {
		log.Debug("seller updated", "id", out.ID, "department", out.DepartmentID)
	}
	return out, err
}

func (s *SellerService) Delete(ctx context.Context, sl model.Seller) error {
	if err := s.repo.Delete(ctx, sl.ID); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("seller deleted", "id", sl.ID)
	return nil
}
