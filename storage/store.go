// Package storage is the persistence gateway for the catalog domain.
// The cascade engine and the controllers talk to Store rather than to
// gorm directly so the propagation logic can be exercised without a
// database.
package storage

import (
	"context"
	"errors"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
)

// ErrNotFound is returned when the referenced row does not exist.
var ErrNotFound = errors.New("storage: record not found")

// Store abstracts category/product/catalog/supplier persistence.
//
// Update methods return the updated row or ErrNotFound. Bulk methods
// return the number of rows written. Writes are unconditional: updating
// a row to the value it already holds still counts it as affected.
type Store interface {
	GetAllCategories(ctx context.Context, includeInactive bool) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	GetChildCategories(ctx context.Context, parentID uint, includeInactive bool) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error)

	GetProductsByCategory(ctx context.Context, categoryID uint, limit, offset int, includeInactive bool) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error)

	GetSupplierByID(ctx context.Context, id uint) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint, patch map[string]interface{}) (*models.Supplier, error)

	GetCatalogsBySupplierID(ctx context.Context, supplierID uint, activeOnly bool) ([]models.Catalog, error)
	GetCatalogByID(ctx context.Context, id uint) (*models.Catalog, error)
	UpdateCatalog(ctx context.Context, id uint, patch map[string]interface{}) (*models.Catalog, error)

	BulkUpdateCatalogProducts(ctx context.Context, catalogID uint, isActive bool) (int64, error)
	BulkUpdateProductStatus(ctx context.Context, ids []uint, isActive bool) (int64, error)

	// WithinTransaction runs fn against a transactional view of the
	// store. Implementations without transaction support run fn
	// directly, in which case a mid-cascade failure leaves the writes
	// issued so far applied.
	WithinTransaction(ctx context.Context, fn func(Store) error) error
}
