package requests

import "mime/multipart"

type CreateProductRequest struct {
	Name        string  `form:"name" binding:"required"`
	Slug        string  `form:"slug"`
	Sku         string  `form:"sku" binding:"required"`
	Description *string `form:"description"`
	Brand       *string `form:"brand"`

	CategoryID uint  `form:"category_id" binding:"required"`
	CatalogID  *uint `form:"catalog_id"`

	Price        string  `form:"price" binding:"required"`
	ComparePrice *string `form:"compare_price"`

	StockQuantity int  `form:"stock_quantity"`
	IsActive      bool `form:"is_active"`

	Image *multipart.FileHeader `form:"image"`
}

type UpdateProductRequest struct {
	Name        string  `form:"name"`
	Slug        string  `form:"slug"`
	Sku         string  `form:"sku"`
	Description *string `form:"description"`
	Brand       *string `form:"brand"`

	CategoryID *uint `form:"category_id"`
	CatalogID  *uint `form:"catalog_id"`

	Price        *string `form:"price"`
	ComparePrice *string `form:"compare_price"`

	StockQuantity *int  `form:"stock_quantity"`
	IsActive      *bool `form:"is_active"`

	Image       *multipart.FileHeader `form:"image"`
	RemoveImage bool                  `form:"remove_image"`
}

// BulkUpdateProductStatusRequest flips visibility on a set of
// products. The id list must not be empty.
type BulkUpdateProductStatusRequest struct {
	ProductIDs []uint `json:"product_ids" binding:"required,min=1,dive,gt=0"`
	IsActive   *bool  `json:"is_active" binding:"required"`
}
