// Package models contains data models for the clinic front-desk service.
package models

// User roles. Authorization beyond "logged in" is not implemented; the role
// only distinguishes the bootstrap admin account from regular staff.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a staff member who can operate the front desk.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:user"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
