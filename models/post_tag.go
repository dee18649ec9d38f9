package models

// PostTag is the association row between posts and tags. Rows are removed
// when either side is deleted. Registered as the join table for Post.Tags
// via SetupJoinTable during database bootstrap.
type PostTag struct {
	PostID uint `gorm:"primaryKey" json:"post_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
