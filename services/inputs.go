package services

// Partial-update shapes for the remaining entity kinds. Pointer fields mark
// presence: nil leaves the stored value untouched.

// UpdatePostInput is the partial-update shape for posts.
type UpdatePostInput struct {
	Title            *string `json:"title"`
	ShortDescription *string `json:"short_description"`
	Content          *string `json:"content"`
	AuthorID         *uint   `json:"author_id"`
	CategoryID       *uint   `json:"category_id"`
}

// Changes implements UpdateInput.
func (in UpdatePostInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.ShortDescription != nil {
		changes["short_description"] = *in.ShortDescription
	}
	if in.Content != nil {
		changes["content"] = *in.Content
	}
	if in.AuthorID != nil {
		changes["author_id"] = *in.AuthorID
	}
	if in.CategoryID != nil {
		changes["category_id"] = *in.CategoryID
	}
	return changes
}

// UpdateCategoryInput is the partial-update shape for categories.
type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

// Changes implements UpdateInput.
func (in UpdateCategoryInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	return changes
}

// UpdateTagInput is the partial-update shape for tags.
type UpdateTagInput struct {
	Name *string `json:"name"`
}

// Changes implements UpdateInput.
func (in UpdateTagInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	return changes
}

// UpdateCommentInput is the partial-update shape for comments.
type UpdateCommentInput struct {
	Comment *string `json:"comment"`
}

// Changes implements UpdateInput.
func (in UpdateCommentInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Comment != nil {
		changes["comment"] = *in.Comment
	}
	return changes
}
