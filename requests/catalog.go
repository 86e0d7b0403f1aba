package requests

type CreateCatalogRequest struct {
	SupplierID  uint    `json:"supplier_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Season      *string `json:"season"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCatalogRequest is a partial patch. When is_active is present
// the change propagates to every product in the catalog, in both
// directions.
type UpdateCatalogRequest struct {
	Name        *string `json:"name"`
	Season      *string `json:"season"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
