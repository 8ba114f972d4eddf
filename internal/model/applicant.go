package model

import "time"

// Applicant represents a submitted application. Rows are created by the
// intake service and never updated in place; admins may list and delete them.
// ResumePath is the storage object name of the uploaded resume, nil when the
// submission carried no file.
type Applicant struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	Email        string     `gorm:"not null" json:"email"`
	Phone        *string    `json:"phone"`
	DepartmentID uint       `gorm:"not null;index" json:"departmentId"`
	Department   Department `gorm:"foreignKey:DepartmentID;references:ID" json:"-"`
	Experience   string     `gorm:"not null" json:"experience"`
	Skills       string     `gorm:"type:text;not null" json:"skills"`
	CoverLetter  *string    `gorm:"type:text" json:"coverLetter"`
	ResumePath   *string    `json:"resumePath"`
	CreatedAt    time.Time  `gorm:"type:timestamp" json:"createdAt"`
}
