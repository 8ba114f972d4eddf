package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"satellite-recruit-backend/internal/model"
)

// AboutUs returns the current about-us row or ErrNotFound when none was ever
// written.
func (r *Repository) AboutUs() (*model.AboutUs, error) {
	var about model.AboutUs
	if err := r.db.First(&about).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get about us: %w", err)
	}
	return &about, nil
}

// UpsertAboutUs writes the about-us content. The first write creates the row,
// every later write updates it in place; last write wins.
func (r *Repository) UpsertAboutUs(content string) (*model.AboutUs, error) {
	var about model.AboutUs
	err := r.db.First(&about).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		about = model.AboutUs{Content: content, UpdatedAt: time.Now()}
		if err := r.db.Create(&about).Error; err != nil {
			return nil, fmt.Errorf("create about us: %w", err)
		}
		return &about, nil
	case err != nil:
		return nil, fmt.Errorf("load about us: %w", err)
	}

	about.Content = content
	about.UpdatedAt = time.Now()
	if err := r.db.Save(&about).Error; err != nil {
		return nil, fmt.Errorf("update about us: %w", err)
	}
	return &about, nil
}
