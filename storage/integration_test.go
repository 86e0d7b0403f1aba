//go:build integration
// +build integration

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
)

// setupTestDB starts a PostgreSQL container and returns a migrated
// gorm connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Supplier{},
		&models.Catalog{},
		&models.Category{},
		&models.Product{},
	))
	return db
}

func TestGormStoreCategoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewGormStore(db)
	ctx := context.Background()

	parent := models.Category{Name: "Shoes", Slug: "shoes", Level: 0, IsActive: true}
	require.NoError(t, db.Create(&parent).Error)
	child := models.Category{Name: "Sneakers", Slug: "sneakers", Level: 1, ParentID: &parent.ID, IsActive: true}
	require.NoError(t, db.Create(&child).Error)

	got, err := store.GetCategoryByID(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shoes", got.Name)

	_, err = store.GetCategoryByID(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	children, err := store.GetChildCategories(ctx, parent.ID, true)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	updated, err := store.UpdateCategory(ctx, parent.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Inactive children are still returned when asked for.
	_, err = store.UpdateCategory(ctx, child.ID, map[string]interface{}{"is_active": false})
	require.NoError(t, err)
	children, err = store.GetChildCategories(ctx, parent.ID, true)
	require.NoError(t, err)
	assert.Len(t, children, 1)
	children, err = store.GetChildCategories(ctx, parent.ID, false)
	require.NoError(t, err)
	assert.Len(t, children, 0)
}

func TestGormStoreBulkUpdates(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewGormStore(db)
	ctx := context.Background()

	supplier := models.Supplier{Name: "Karoo Traders", IsActive: true}
	require.NoError(t, db.Create(&supplier).Error)
	catalog := models.Catalog{SupplierID: supplier.ID, Name: "Winter 2026", IsActive: true}
	require.NoError(t, db.Create(&catalog).Error)
	category := models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	var ids []uint
	for _, sku := range []string{"SKU-1", "SKU-2", "SKU-3"} {
		p := models.Product{
			Name: sku, Slug: sku, Sku: sku,
			CategoryID: category.ID, CatalogID: &catalog.ID,
			IsActive: true,
		}
		require.NoError(t, db.Create(&p).Error)
		ids = append(ids, p.ID)
	}

	count, err := store.BulkUpdateCatalogProducts(ctx, catalog.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	products, err := store.GetProductsByCategory(ctx, category.ID, 0, 0, true)
	require.NoError(t, err)
	for _, p := range products {
		assert.False(t, p.IsActive)
	}

	count, err = store.BulkUpdateProductStatus(ctx, ids[:2], true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Unconditional writes: repeating the update reports the same count.
	count, err = store.BulkUpdateProductStatus(ctx, ids[:2], true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestGormStoreTransactionRollsBack(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewGormStore(db)
	ctx := context.Background()

	category := models.Category{Name: "Shoes", Slug: "shoes", IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	err := store.WithinTransaction(ctx, func(tx storage.Store) error {
		if _, err := tx.UpdateCategory(ctx, category.ID, map[string]interface{}{"is_active": false}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	got, err := store.GetCategoryByID(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive, "rolled-back write must not be visible")
}
