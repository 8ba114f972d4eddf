package model

// RoleAdmin is the only role the recruitment site needs; the admin panel is
// the single authenticated surface.
const RoleAdmin = "admin"

// User is the admin credential store. Password holds a bcrypt hash, never
// plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:text;not null" json:"role"`
}
