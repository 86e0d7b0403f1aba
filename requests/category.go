package requests

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	ParentID    *uint   `json:"parent_id"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryVisibilityRequest drives the cascade endpoint. Cascade
// defaults to true when omitted.
type CategoryVisibilityRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
	Cascade  *bool `json:"cascade"`
}

func (r *CategoryVisibilityRequest) CascadeOrDefault() bool {
	if r.Cascade == nil {
		return true
	}
	return *r.Cascade
}
