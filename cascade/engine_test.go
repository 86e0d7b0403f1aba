package cascade

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
)

func uintPtr(v uint) *uint { return &v }

// seedShoeTree builds the fixture used throughout: parent category
// "Shoes" (5) with child "Sneakers" (12) holding products 100-102, a
// direct product 103 on the parent, and an unrelated sibling tree.
func seedShoeTree() *storage.MemStore {
	s := storage.NewMemStore()

	s.Categories[5] = &models.Category{ID: 5, Name: "Shoes", Slug: "shoes", Level: 0, IsActive: true}
	s.Categories[12] = &models.Category{ID: 12, Name: "Sneakers", Slug: "sneakers", Level: 1, ParentID: uintPtr(5), IsActive: true}
	s.Categories[6] = &models.Category{ID: 6, Name: "Apparel", Slug: "apparel", Level: 0, IsActive: true}
	s.Categories[13] = &models.Category{ID: 13, Name: "Boots", Slug: "boots", Level: 1, ParentID: uintPtr(5), IsActive: true}

	for _, id := range []uint{100, 101, 102} {
		s.Products[id] = &models.Product{ID: id, CategoryID: 12, IsActive: true}
	}
	s.Products[103] = &models.Product{ID: 103, CategoryID: 5, IsActive: true}
	s.Products[200] = &models.Product{ID: 200, CategoryID: 6, IsActive: true}

	return s
}

func TestCategoryVisibilityCascadesToSubtree(t *testing.T) {
	store := seedShoeTree()
	engine := New(store)

	res, err := engine.CategoryVisibility(context.Background(), 5, false, true)
	require.NoError(t, err)

	assert.False(t, res.Category.IsActive)
	assert.True(t, res.Cascaded)
	assert.Equal(t, 2, res.SubcategoriesUpdated)
	assert.Equal(t, 4, res.ProductsUpdated) // 100-102 via Sneakers, 103 direct

	assert.False(t, store.Categories[12].IsActive)
	assert.False(t, store.Categories[13].IsActive)
	for _, id := range []uint{100, 101, 102, 103} {
		assert.False(t, store.Products[id].IsActive, "product %d", id)
	}

	// Unrelated tree untouched.
	assert.True(t, store.Categories[6].IsActive)
	assert.True(t, store.Products[200].IsActive)
}

func TestCategoryVisibilityIncludesInactiveChildren(t *testing.T) {
	store := seedShoeTree()
	store.Categories[12].IsActive = false // already hidden child must still be walked
	engine := New(store)

	res, err := engine.CategoryVisibility(context.Background(), 5, false, true)
	require.NoError(t, err)

	assert.Equal(t, 2, res.SubcategoriesUpdated)
	assert.Equal(t, 4, res.ProductsUpdated)
}

func TestChildCategoryNeverTouchesSiblingsOrParent(t *testing.T) {
	store := seedShoeTree()
	engine := New(store)

	res, err := engine.CategoryVisibility(context.Background(), 12, false, true)
	require.NoError(t, err)

	// Cascade was requested but the target is a child, so only its own
	// direct products are rewritten.
	assert.True(t, res.Cascaded)
	assert.Equal(t, 0, res.SubcategoriesUpdated)
	assert.Equal(t, 3, res.ProductsUpdated)

	assert.True(t, store.Categories[5].IsActive, "parent must stay untouched")
	assert.True(t, store.Categories[13].IsActive, "sibling must stay untouched")
	assert.True(t, store.Products[103].IsActive, "parent's direct product must stay untouched")
}

func TestCategoryVisibilityWithoutCascade(t *testing.T) {
	store := seedShoeTree()
	engine := New(store)

	res, err := engine.CategoryVisibility(context.Background(), 5, false, false)
	require.NoError(t, err)

	assert.False(t, res.Cascaded)
	assert.Equal(t, 0, res.SubcategoriesUpdated)
	// Direct products are always aligned, even without cascading.
	assert.Equal(t, 1, res.ProductsUpdated)

	assert.True(t, store.Categories[12].IsActive)
	assert.True(t, store.Products[100].IsActive)
	assert.False(t, store.Products[103].IsActive)
}

func TestCategoryVisibilityIsIdempotent(t *testing.T) {
	store := seedShoeTree()
	engine := New(store)

	first, err := engine.CategoryVisibility(context.Background(), 5, false, true)
	require.NoError(t, err)
	second, err := engine.CategoryVisibility(context.Background(), 5, false, true)
	require.NoError(t, err)

	// Writes are unconditional, so the second pass reports the same
	// row counts rather than zero.
	assert.Equal(t, first.SubcategoriesUpdated, second.SubcategoriesUpdated)
	assert.Equal(t, first.ProductsUpdated, second.ProductsUpdated)
	assert.False(t, store.Categories[12].IsActive)
}

func TestCategoryVisibilityNotFound(t *testing.T) {
	engine := New(storage.NewMemStore())

	_, err := engine.CategoryVisibility(context.Background(), 999, false, true)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCategoryVisibilityAbortsOnFailure(t *testing.T) {
	store := seedShoeTree()
	boom := errors.New("write failed")
	store.ProductUpdateHook = func(id uint) error {
		if id == 101 {
			return boom
		}
		return nil
	}
	engine := New(store)

	_, err := engine.CategoryVisibility(context.Background(), 5, false, true)
	require.ErrorIs(t, err, boom)

	// The store has no rollback: rows written before the failure stay
	// written, the rest are untouched.
	assert.False(t, store.Categories[12].IsActive)
	assert.False(t, store.Products[100].IsActive)
	assert.True(t, store.Products[101].IsActive)
	assert.True(t, store.Products[102].IsActive)
}

func seedSupplierCatalogs() *storage.MemStore {
	s := storage.NewMemStore()
	s.Catalogs[1] = &models.Catalog{ID: 1, SupplierID: 7, Name: "Winter 2026", IsActive: true}
	s.Catalogs[2] = &models.Catalog{ID: 2, SupplierID: 7, Name: "Clearance", IsActive: false}
	s.Catalogs[3] = &models.Catalog{ID: 3, SupplierID: 8, Name: "Other supplier", IsActive: true}

	s.Products[10] = &models.Product{ID: 10, CategoryID: 1, CatalogID: uintPtr(1), IsActive: true}
	s.Products[11] = &models.Product{ID: 11, CategoryID: 1, CatalogID: uintPtr(1), IsActive: true}
	s.Products[12] = &models.Product{ID: 12, CategoryID: 1, CatalogID: uintPtr(2), IsActive: false}
	s.Products[13] = &models.Product{ID: 13, CategoryID: 1, CatalogID: uintPtr(3), IsActive: true}
	return s
}

func TestSupplierDeactivationCascades(t *testing.T) {
	store := seedSupplierCatalogs()
	engine := New(store)

	res, err := engine.SupplierDeactivation(context.Background(), 7)
	require.NoError(t, err)

	// Inactive catalogs are walked too.
	assert.Equal(t, 2, res.CatalogsUpdated)
	assert.Equal(t, 3, res.ProductsUpdated)

	assert.False(t, store.Catalogs[1].IsActive)
	assert.False(t, store.Catalogs[2].IsActive)
	assert.False(t, store.Products[10].IsActive)
	assert.False(t, store.Products[11].IsActive)

	// The other supplier is untouched.
	assert.True(t, store.Catalogs[3].IsActive)
	assert.True(t, store.Products[13].IsActive)
}

func TestCatalogStatusIsSymmetric(t *testing.T) {
	store := seedSupplierCatalogs()
	engine := New(store)

	count, err := engine.CatalogStatus(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.False(t, store.Products[10].IsActive)
	assert.False(t, store.Products[11].IsActive)

	// Reactivating the catalog flips its products back, unlike the
	// supplier cascade.
	count, err = engine.CatalogStatus(context.Background(), 1, true)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.True(t, store.Products[10].IsActive)
	assert.True(t, store.Products[11].IsActive)
}
