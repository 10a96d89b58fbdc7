package service

import (
	"context"
	"strings"

	"saleshub-cli/internal/logging"
	"saleshub-cli/internal/model"
	"saleshub-cli/internal/store"
)

// DepartmentRepository is the persistence contract DepartmentService relies on.
type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]model.Department, error)
	FindByID(ctx context.Context, id int64) (model.Department, error)
	Insert(ctx context.Context, d model.Department) (model.Department, error)
	Update(ctx context.Context, d model.Department) (model.Department, error)
	Delete(ctx context.Context, id int64) error
}

type DepartmentService struct {
	repo DepartmentRepository
}

func NewDepartmentService(repo DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

// FindAll returns departments in storage order; callers sort for display.
func (s *DepartmentService) FindAll(ctx context.Context) ([]model.Department, error) {
	return s.repo.FindAll(ctx)
}

func (s *DepartmentService) FindByID(ctx context.Context, id int64) (model.Department, error) {
	return s.repo.FindByID(ctx, id)
}

// Save inserts when d.ID is zero and updates otherwise.
func (s *DepartmentService) Save(ctx context.Context, d model.Department) (model.Department, error) {
	d.Name = strings.TrimSpace(d.Name)
	ve := &ValidationError{}
	checkStruct(d, ve)
	if err := ve.orNil(); err != nil {
		return model.Department{}, err
	}
	log := logging.FromContext(ctx)
	if d.ID == 0 {
		out, err := s.repo.Insert(ctx, d)
		if err == nil {
			log.Debug("department created", "id", out.ID, "name", out.Name)
		}
		return out, err
	}
	out, err := s.repo.Update(ctx, d)
	if err == nil {
		log.Debug("department updated", "id", out.ID, "name", out.Name)
	}
	return out, err
}

func (s *DepartmentService) Delete(ctx context.Context, d model.Department) error {
	if err := s.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("department deleted", "id", d.ID)
	return nil
}

// NewDepartmentServiceFromDB wires the service to an open store.
func NewDepartmentServiceFromDB(db *store.DB) *DepartmentService {
	return NewDepartmentService(db.Departments())
}
