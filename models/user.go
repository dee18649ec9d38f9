package models

import "time"

// User represents an account. Passwords are stored as bcrypt hashes only;
// HashedPassword is never serialized outward.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;index" json:"name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	IsActive       bool      `gorm:"default:false" json:"is_active"`
	IsSuperuser    bool      `gorm:"default:false" json:"is_superuser"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Password holds a plaintext candidate between input binding and the
	// user service's prepare-write hook. It is never persisted.
	Password string `gorm:"-" json:"-"`

	// The back-reference carries the FK rule: GORM builds the posts-table
	// constraint from this side, not from Post.Author.
	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
