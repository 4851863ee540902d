package models

import (
	"time"
)

// Course is a unit of instructional content owned by exactly one user.
// The owner is set at creation time and never reassigned.
type Course struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"not null;type:text" json:"description"`
	EstimatedTime   *string   `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string   `json:"materialsNeeded,omitempty"`
	UserID          uint      `gorm:"not null;index" json:"userId"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName overrides the table name
func (Course) TableName() string {
	return "courses"
}
