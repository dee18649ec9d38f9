package models

import "time"

// Comment is a reply to a post. The post reference is strong (cascade); the
// author reference is weak (nullify).
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Comment   string    `gorm:"size:255" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AuthorID *uint `gorm:"index" json:"author_id"`
	Author   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"author,omitempty"`

	PostID uint  `gorm:"index;not null" json:"post_id"`
	Post   *Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
