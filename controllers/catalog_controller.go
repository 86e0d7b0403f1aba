package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LearnPlayAI/HeartCart-sub006/cascade"
	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/requests"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

func GetCatalogs(c *gin.Context) {
	var catalogs []models.Catalog
	q := config.DB.Preload("Supplier").Order("id desc")
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		q = q.Where("supplier_id = ?", supplierID)
	}
	if err := q.Find(&catalogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch catalogs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": catalogs})
}

func GetCatalogDetail(c *gin.Context) {
	catalogID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	catalog, err := Store.GetCatalogByID(c.Request.Context(), catalogID)
	if err != nil {
		respondCascadeError(c, err, "Catalog")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": catalog})
}

func CreateCatalog(c *gin.Context) {
	var req requests.CreateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, req.SupplierID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Supplier not found"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	catalog := models.Catalog{
		SupplierID:  req.SupplierID,
		Name:        req.Name,
		Season:      req.Season,
		Year:        req.Year,
		Description: req.Description,
		IsActive:    isActive,
	}

	if err := config.DB.Create(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create catalog"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Catalog created", "data": catalog})
}

// UpdateCatalog applies a partial patch. When is_active is present the
// new state is pushed to every product in the catalog — in both
// directions, unlike the supplier cascade.
//
// PUT /api/catalogs/:id
func UpdateCatalog(c *gin.Context) {
	catalogID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	var req requests.UpdateCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Season != nil {
		patch["season"] = *req.Season
	}
	if req.Year != nil {
		patch["year"] = *req.Year
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	var catalog *models.Catalog
	productsUpdated := 0

	err := Store.WithinTransaction(c.Request.Context(), func(tx storage.Store) error {
		var err error
		// Catalog row first, dependent product rows after.
		catalog, err = tx.UpdateCatalog(c.Request.Context(), catalogID, patch)
		if err != nil {
			return err
		}
		if req.IsActive != nil {
			productsUpdated, err = cascade.New(tx).CatalogStatus(c.Request.Context(), catalogID, *req.IsActive)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondCascadeError(c, err, "Catalog")
		return
	}

	if req.IsActive != nil {
		websocket.BroadcastEvent("cascade", gin.H{
			"entity":           "catalog",
			"id":               catalog.ID,
			"is_active":        catalog.IsActive,
			"products_updated": productsUpdated,
		})
	}

	// The cascade is a side effect; the response body is just the row.
	c.JSON(http.StatusOK, gin.H{"message": "Catalog updated", "data": catalog})
}
