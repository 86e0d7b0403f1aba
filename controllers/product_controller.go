package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/jobs"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/requests"
	"github.com/LearnPlayAI/HeartCart-sub006/utils"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

// GetProductHome returns one active product by slug for the
// storefront.
func GetProductHome(c *gin.Context) {
	slug := c.Param("slug")
	var product models.Product

	err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&product).Error

	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": product})
}

// GetProductsHome lists active products for the storefront,
// optionally filtered by category slug.
func GetProductsHome(c *gin.Context) {
	q := config.DB.Where("products.is_active = ?", true).Order("name asc")

	if slug := c.Query("category"); slug != "" {
		var category models.Category
		if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		q = q.Where("category_id = ?", category.ID)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": products})
}

// GetProducts lists products for the admin UI with simple paging.
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	q := config.DB.Preload("Category").Order("id desc")
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if catalogID := c.Query("catalog_id"); catalogID != "" {
		q = q.Where("catalog_id = ?", catalogID)
	}

	var total int64
	q.Model(&models.Product{}).Count(&total)

	var products []models.Product
	err := q.Limit(perPage).Offset((page - 1) * perPage).Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "OK",
		"data":     products,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func CreateProduct(c *gin.Context) {
	var req requests.CreateProductRequest

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
		return
	}

	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          slug,
		Sku:           req.Sku,
		Description:   req.Description,
		Brand:         req.Brand,
		CategoryID:    req.CategoryID,
		CatalogID:     req.CatalogID,
		Price:         price,
		StockQuantity: req.StockQuantity,
		IsActive:      req.IsActive,
	}

	if req.ComparePrice != nil {
		cp, err := decimal.NewFromString(*req.ComparePrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid compare price"})
			return
		}
		product.ComparePrice = &cp
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		upload, err := utils.UploadFile(req.Image, "products")
		if err != nil {
			log.Printf("image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
			return
		}
		product.ImageURL = &upload.SecureURL
		product.ImagePublicID = &upload.PublicID
	}

	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create product",
		})
		return
	}

	enqueueImageDerivatives(&product)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created",
		"data":    product,
	})
}

func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req requests.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var product models.Product
	result := config.DB.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		}
		return
	}

	if req.Name != "" {
		product.Name = req.Name
		if req.Slug == "" {
			product.Slug = utils.Slugify(req.Name)
		}
	}
	if req.Slug != "" {
		product.Slug = req.Slug
	}
	if req.Sku != "" {
		product.Sku = req.Sku
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Brand != nil {
		product.Brand = req.Brand
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.CatalogID != nil {
		product.CatalogID = req.CatalogID
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price"})
			return
		}
		product.Price = price
	}
	if req.ComparePrice != nil {
		cp, err := decimal.NewFromString(*req.ComparePrice)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid compare price"})
			return
		}
		product.ComparePrice = &cp
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.RemoveImage && product.ImagePublicID != nil {
		if err := utils.DeleteFile(*product.ImagePublicID); err != nil {
			log.Printf("image delete failed: %v", err)
		}
		product.ImageURL = nil
		product.ImagePublicID = nil
		product.ThumbnailURL = nil
	}

	if req.Image != nil {
		if err := utils.ValidateImage(req.Image); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if product.ImagePublicID != nil {
			if err := utils.DeleteFile(*product.ImagePublicID); err != nil {
				log.Printf("old image delete failed: %v", err)
			}
		}
		upload, err := utils.UploadFile(req.Image, "products")
		if err != nil {
			log.Printf("image upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
			return
		}
		product.ImageURL = &upload.SecureURL
		product.ImagePublicID = &upload.PublicID
		product.ThumbnailURL = nil
	}

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	if req.Image != nil {
		enqueueImageDerivatives(&product)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated",
		"data":    product,
	})
}

// DeleteProduct soft-deletes by deactivating the row.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if err := config.DB.Model(&product).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to deactivate product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
}

// BulkUpdateProductStatus flips visibility on a set of products. No
// cascade semantics, but it shares the affected-count contract with
// the cascade endpoints.
//
// POST /api/products/bulk-update-status
func BulkUpdateProductStatus(c *gin.Context) {
	var req requests.BulkUpdateProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := Store.BulkUpdateProductStatus(c.Request.Context(), req.ProductIDs, *req.IsActive)
	if err != nil {
		log.Printf("bulk status update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	websocket.BroadcastEvent("products", gin.H{
		"action":    "bulk_status",
		"is_active": *req.IsActive,
		"count":     count,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"message": fmt.Sprintf("%d products updated", count),
	})
}

func enqueueImageDerivatives(product *models.Product) {
	if Queue == nil || product.ImageURL == nil {
		return
	}
	task, err := jobs.NewImageDerivativesTask(product.ID)
	if err != nil {
		log.Printf("failed to build image task: %v", err)
		return
	}
	if _, err := Queue.Enqueue(task); err != nil {
		log.Printf("failed to enqueue image task: %v", err)
	}
}
