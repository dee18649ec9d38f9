package models

import "time"

// Post is a blog entry. Author and category references are weak: deleting
// either side nulls the reference instead of removing the post.
type Post struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;uniqueIndex" json:"title"`
	ShortDescription string    `gorm:"size:255" json:"short_description"`
	Content          string    `gorm:"type:text" json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	AuthorID *uint `gorm:"index" json:"author_id"`
	Author   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"author,omitempty"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`

	// Comments cannot outlive their post.
	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Tags []Tag `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}
