// Package model contains the database entities of the recruitment site.
package model

import "github.com/lib/pq"

// Department represents a recruiting department of the satellite project.
// Departments are seeded once at startup and are read-only afterwards; there
// is no update or delete path.
type Department struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Icon             string         `gorm:"not null" json:"icon"`
	Color            string         `gorm:"not null" json:"color"`
	Requirements     pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Responsibilities pq.StringArray `gorm:"type:text[]" json:"responsibilities"`
}
