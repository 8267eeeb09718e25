// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in Liberty Social.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Username    string         `gorm:"size:30;index" json:"username,omitempty"`
	FirstName   string         `gorm:"size:60" json:"first_name,omitempty"`
	LastName    string         `gorm:"size:60" json:"last_name,omitempty"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Gender      string         `gorm:"size:20" json:"gender,omitempty"`
	Private     bool           `gorm:"default:false" json:"private"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Posts       []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
