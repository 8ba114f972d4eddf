package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"satellite-recruit-backend/internal/model"
)

// Applicants returns every applicant, newest first.
func (r *Repository) Applicants() ([]model.Applicant, error) {
	applicants := []model.Applicant{}
	if err := r.db.Order("created_at DESC").Find(&applicants).Error; err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	return applicants, nil
}

// ApplicantByID returns the applicant with the given id or ErrNotFound.
func (r *Repository) ApplicantByID(id uint) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := r.db.First(&applicant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get applicant %d: %w", id, err)
	}
	return &applicant, nil
}

// CreateApplicant inserts an applicant row and fills in the assigned id.
func (r *Repository) CreateApplicant(applicant *model.Applicant) error {
	if err := r.db.Create(applicant).Error; err != nil {
		return fmt.Errorf("create applicant: %w", err)
	}
	return nil
}

// DeleteApplicant removes the applicant row with the given id. Returns
// ErrNotFound when no row matched.
func (r *Repository) DeleteApplicant(id uint) error {
	res := r.db.Delete(&model.Applicant{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete applicant %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
