package models

// Category groups posts. Deleting a category nulls the reference on posts.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;uniqueIndex" json:"name"`

	// The back-reference carries the FK rule: GORM builds the posts-table
	// constraint from this side, not from Post.Category.
	Posts []Post `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}
