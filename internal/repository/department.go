package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"satellite-recruit-backend/internal/model"
)

// Departments returns every department, ordered by id. An empty table yields
// an empty slice, not an error.
func (r *Repository) Departments() ([]model.Department, error) {
	departments := []model.Department{}
	if err := r.db.Order("id ASC").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// DepartmentByID returns the department with the given id or ErrNotFound.
func (r *Repository) DepartmentByID(id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get department %d: %w", id, err)
	}
	return &department, nil
}

// CreateDepartment inserts a department and fills in the assigned id.
func (r *Repository) CreateDepartment(department *model.Department) error {
	if err := r.db.Create(department).Error; err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}
