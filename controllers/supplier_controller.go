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

func GetSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Order("name asc").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch suppliers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": suppliers})
}

func GetSupplierDetail(c *gin.Context) {
	supplierID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	supplier, err := Store.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		respondCascadeError(c, err, "Supplier")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": supplier})
}

func CreateSupplier(c *gin.Context) {
	var req requests.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	supplier := models.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		VatNumber:     req.VatNumber,
		IsActive:      isActive,
	}

	if err := config.DB.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create supplier"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created", "data": supplier})
}

// UpdateSupplier applies a partial patch. An active-to-inactive
// transition deactivates the supplier's catalogs and their products as
// a side effect; reactivation deliberately cascades nothing, so
// operators re-enable each level explicitly.
//
// PUT /api/suppliers/:id
func UpdateSupplier(c *gin.Context) {
	supplierID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	var req requests.UpdateSupplierRequest
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
	if req.ContactPerson != nil {
		patch["contact_person"] = *req.ContactPerson
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Phone != nil {
		patch["phone"] = *req.Phone
	}
	if req.Address != nil {
		patch["address"] = *req.Address
	}
	if req.VatNumber != nil {
		patch["vat_number"] = *req.VatNumber
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}

	var supplier *models.Supplier
	var cascadeResult *cascade.SupplierResult

	err := Store.WithinTransaction(c.Request.Context(), func(tx storage.Store) error {
		current, err := tx.GetSupplierByID(c.Request.Context(), supplierID)
		if err != nil {
			return err
		}
		deactivating := req.IsActive != nil && !*req.IsActive && current.IsActive

		supplier, err = tx.UpdateSupplier(c.Request.Context(), supplierID, patch)
		if err != nil {
			return err
		}

		if deactivating {
			cascadeResult, err = cascade.New(tx).SupplierDeactivation(c.Request.Context(), supplierID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		respondCascadeError(c, err, "Supplier")
		return
	}

	if cascadeResult != nil {
		websocket.BroadcastEvent("cascade", gin.H{
			"entity":           "supplier",
			"id":               supplier.ID,
			"is_active":        false,
			"catalogs_updated": cascadeResult.CatalogsUpdated,
			"products_updated": cascadeResult.ProductsUpdated,
		})
	}

	// The cascade is a side effect; the response body is just the row.
	c.JSON(http.StatusOK, gin.H{"message": "Supplier updated", "data": supplier})
}
