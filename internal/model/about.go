package model

import "time"

// AboutUs holds the editable content blob shown on the about page. At most
// one row is meaningful; every write upserts that row (last write wins).
type AboutUs struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updatedAt"`
}

// TableName keeps the table name the frontend contract was built against.
func (AboutUs) TableName() string { return "about_us" }
