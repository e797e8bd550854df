// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	AvatarURL string `json:"avatar_url,omitempty"`
	// PostCount is a denormalized count of the user's non-deleted posts.
	// It is written only by PostService.RecountPosts and may lag a mutation
	// until the recount that follows it lands; readers must treat it as
	// advisory display data, not an exact aggregate.
	PostCount int       `gorm:"not null;default:0" json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
