package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LearnPlayAI/HeartCart-sub006/controllers"
	"github.com/LearnPlayAI/HeartCart-sub006/middleware"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/routes"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
)

func setupRouter(t *testing.T, store *storage.MemStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	controllers.Init(store, nil)
	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func uintPtr(v uint) *uint { return &v }

func seedShoeStore() *storage.MemStore {
	store := storage.NewMemStore()
	store.Categories[5] = &models.Category{ID: 5, Name: "Shoes", Slug: "shoes", Level: 0, IsActive: true}
	store.Categories[12] = &models.Category{ID: 12, Name: "Sneakers", Slug: "sneakers", Level: 1, ParentID: uintPtr(5), IsActive: true}
	for _, id := range []uint{100, 101, 102} {
		store.Products[id] = &models.Product{ID: id, CategoryID: 12, IsActive: true}
	}
	return store
}

func TestCategoryVisibilityEndToEnd(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/categories/5/visibility", adminToken(t),
		gin.H{"is_active": false, "cascade": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.EqualValues(t, 5, resp["id"])
	assert.Equal(t, false, resp["is_active"])
	assert.EqualValues(t, 3, resp["products_updated"])
	assert.EqualValues(t, 1, resp["subcategories_updated"])
	assert.Equal(t, true, resp["cascaded"])

	assert.False(t, store.Categories[12].IsActive)
	for _, id := range []uint{100, 101, 102} {
		assert.False(t, store.Products[id].IsActive, "product %d", id)
	}
}

func TestCategoryVisibilityDefaultsToCascade(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/categories/5/visibility", adminToken(t),
		gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["cascaded"])
	assert.False(t, store.Categories[12].IsActive)
}

func TestCategoryVisibilityValidation(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)
	token := adminToken(t)

	// Non-numeric id
	w := doJSON(t, r, http.MethodPut, "/api/categories/abc/visibility", token,
		gin.H{"is_active": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing is_active
	w = doJSON(t, r, http.MethodPut, "/api/categories/5/visibility", token, gin.H{"cascade": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category
	w = doJSON(t, r, http.MethodPut, "/api/categories/999/visibility", token,
		gin.H{"is_active": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryVisibilityRequiresAdmin(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/categories/5/visibility", "",
		gin.H{"is_active": false})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customer, err := middleware.GenerateToken(2, models.RoleCustomer)
	require.NoError(t, err)
	w = doJSON(t, r, http.MethodPut, "/api/categories/5/visibility", customer,
		gin.H{"is_active": false})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Nothing was written.
	assert.True(t, store.Categories[5].IsActive)
}

func TestBulkUpdateProductStatus(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/products/bulk-update-status", adminToken(t),
		gin.H{"product_ids": []uint{100, 102}, "is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 2, resp["count"])

	assert.False(t, store.Products[100].IsActive)
	assert.True(t, store.Products[101].IsActive)
	assert.False(t, store.Products[102].IsActive)
}

func TestBulkUpdateProductStatusRejectsEmptyList(t *testing.T) {
	store := seedShoeStore()
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/products/bulk-update-status", adminToken(t),
		gin.H{"product_ids": []uint{}, "is_active": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func seedSupplierStore() *storage.MemStore {
	store := storage.NewMemStore()
	store.Suppliers[7] = &models.Supplier{ID: 7, Name: "Karoo Traders", IsActive: true}
	store.Catalogs[1] = &models.Catalog{ID: 1, SupplierID: 7, Name: "Winter 2026", IsActive: true}
	store.Products[10] = &models.Product{ID: 10, CategoryID: 1, CatalogID: uintPtr(1), IsActive: true}
	store.Products[11] = &models.Product{ID: 11, CategoryID: 1, CatalogID: uintPtr(1), IsActive: true}
	return store
}

func TestSupplierDeactivationCascadesButReactivationDoesNot(t *testing.T) {
	store := seedSupplierStore()
	r := setupRouter(t, store)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPut, "/api/suppliers/7", token, gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.False(t, store.Suppliers[7].IsActive)
	assert.False(t, store.Catalogs[1].IsActive)
	assert.False(t, store.Products[10].IsActive)
	assert.False(t, store.Products[11].IsActive)

	// Reactivation is deliberately not cascaded.
	w = doJSON(t, r, http.MethodPut, "/api/suppliers/7", token, gin.H{"is_active": true})
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, store.Suppliers[7].IsActive)
	assert.False(t, store.Catalogs[1].IsActive)
	assert.False(t, store.Products[10].IsActive)
	assert.False(t, store.Products[11].IsActive)
}

func TestCatalogStatusCascadesBothWays(t *testing.T) {
	store := seedSupplierStore()
	r := setupRouter(t, store)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPut, "/api/catalogs/1", token, gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.False(t, store.Products[10].IsActive)
	assert.False(t, store.Products[11].IsActive)

	w = doJSON(t, r, http.MethodPut, "/api/catalogs/1", token, gin.H{"is_active": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.Products[10].IsActive)
	assert.True(t, store.Products[11].IsActive)
}

func TestCatalogPatchWithoutStatusLeavesProductsAlone(t *testing.T) {
	store := seedSupplierStore()
	store.Products[10].IsActive = false
	r := setupRouter(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/catalogs/1", adminToken(t), gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Renamed", store.Catalogs[1].Name)
	assert.False(t, store.Products[10].IsActive)
	assert.True(t, store.Products[11].IsActive)
}
