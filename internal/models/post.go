package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a single entry in the public square feed. Posts are immutable
// after creation; there is no edit or delete surface.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	AuthorID  uint           `gorm:"not null;index:idx_posts_author" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time      `gorm:"index:idx_posts_created_at" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
