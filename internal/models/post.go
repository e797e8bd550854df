// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a post authored by a user.
//
// Deletion is a tombstone: IsDeleted flips to true and the row stays in
// storage. Every read path must filter on is_deleted = false; GORM's
// soft-delete plugin is deliberately not used so the flag can be set through
// a single conditional UPDATE (see PostRepository.SoftDelete).
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	User     User   `gorm:"foreignKey:UserID" json:"author"`
	// Comments is populated only on single-post reads.
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Post) TableName() string {
	return "posts"
}
