package models

import (
	"time"
)

// User represents a registered account that can own courses.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	EmailAddress string    `gorm:"uniqueIndex;not null" json:"emailAddress"`
	Password     string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`

	// Relationships
	Courses []Course `gorm:"foreignKey:UserID" json:"courses,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// Profile returns the fields of a user that are safe to expose.
// The password hash never leaves the persistence layer.
func (u *User) Profile() Profile {
	return Profile{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// Profile is the public projection of a User.
type Profile struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
