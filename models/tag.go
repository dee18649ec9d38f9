package models

// Tag labels posts through the post_tags association table.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:20;uniqueIndex" json:"name"`

	Posts []Post `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"-"`
}
