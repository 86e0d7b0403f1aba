// Package cascade propagates visibility changes from suppliers,
// catalogs and categories down to the products that depend on them.
//
// Product.IsActive is a denormalized copy of the ancestor state: the
// engine eagerly rewrites dependent rows so storefront reads never need
// a join to decide whether a product is visible. Parent rows are always
// written before their dependent product rows, so a concurrent reader
// never sees an active product under a category already marked
// inactive.
package cascade

import (
	"context"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
)

type Engine struct {
	store storage.Store
}

func New(store storage.Store) *Engine {
	return &Engine{store: store}
}

// CategoryResult reports what a category visibility change touched.
type CategoryResult struct {
	Category             *models.Category
	SubcategoriesUpdated int
	ProductsUpdated      int
	Cascaded             bool
}

// SupplierResult reports what a supplier deactivation touched.
type SupplierResult struct {
	CatalogsUpdated int
	ProductsUpdated int
}

// CategoryVisibility sets a category's visibility and, when cascading
// from a top-level category, pushes the new state to its child
// categories and to every product in the subtree. Child categories are
// fetched including inactive ones so no dependent row is missed.
//
// Writes are unconditional: re-applying the current state still counts
// the rows touched. A failed write aborts the remaining loop; rows
// already written stay written unless the store runs the cascade in a
// transaction.
func (e *Engine) CategoryVisibility(ctx context.Context, categoryID uint, isActive bool, cascadeChildren bool) (*CategoryResult, error) {
	category, err := e.store.UpdateCategory(ctx, categoryID, map[string]interface{}{"is_active": isActive})
	if err != nil {
		return nil, err
	}

	result := &CategoryResult{
		Category: category,
		Cascaded: cascadeChildren,
	}

	if cascadeChildren && category.IsParent() {
		children, err := e.store.GetChildCategories(ctx, category.ID, true)
		if err != nil {
			return nil, err
		}
		for i := range children {
			if _, err := e.store.UpdateCategory(ctx, children[i].ID, map[string]interface{}{"is_active": isActive}); err != nil {
				return nil, err
			}
			result.SubcategoriesUpdated++

			touched, err := e.updateCategoryProducts(ctx, children[i].ID, isActive)
			if err != nil {
				return nil, err
			}
			result.ProductsUpdated += touched
		}
	}

	// Products owned by the target category itself, not via a child.
	touched, err := e.updateCategoryProducts(ctx, category.ID, isActive)
	if err != nil {
		return nil, err
	}
	result.ProductsUpdated += touched

	return result, nil
}

// SupplierDeactivation deactivates every catalog a supplier owns and
// every product in those catalogs. Callers invoke it only on an
// active-to-inactive transition: reactivating a supplier deliberately
// does not cascade, so previously hidden catalogs and products are
// never mass-republished by a single toggle.
func (e *Engine) SupplierDeactivation(ctx context.Context, supplierID uint) (*SupplierResult, error) {
	catalogs, err := e.store.GetCatalogsBySupplierID(ctx, supplierID, false)
	if err != nil {
		return nil, err
	}

	result := &SupplierResult{}
	for i := range catalogs {
		if _, err := e.store.UpdateCatalog(ctx, catalogs[i].ID, map[string]interface{}{"is_active": false}); err != nil {
			return nil, err
		}
		result.CatalogsUpdated++

		count, err := e.store.BulkUpdateCatalogProducts(ctx, catalogs[i].ID, false)
		if err != nil {
			return nil, err
		}
		result.ProductsUpdated += int(count)
	}
	return result, nil
}

// CatalogStatus aligns every product in a catalog with the catalog's
// new visibility. Unlike the supplier cascade this runs in both
// directions. The catalog row itself must already be written so the
// parent-before-children ordering holds.
func (e *Engine) CatalogStatus(ctx context.Context, catalogID uint, isActive bool) (int, error) {
	count, err := e.store.BulkUpdateCatalogProducts(ctx, catalogID, isActive)
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (e *Engine) updateCategoryProducts(ctx context.Context, categoryID uint, isActive bool) (int, error) {
	products, err := e.store.GetProductsByCategory(ctx, categoryID, 0, 0, true)
	if err != nil {
		return 0, err
	}
	touched := 0
	for i := range products {
		if _, err := e.store.UpdateProduct(ctx, products[i].ID, map[string]interface{}{"is_active": isActive}); err != nil {
			return touched, err
		}
		touched++
	}
	return touched, nil
}
