package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/utils"
)

// GetProductJSONLD serves schema.org Product markup for a product
// page, rendered server-side so crawlers see it without running the
// React app.
func GetProductJSONLD(c *gin.Context) {
	slug := c.Param("slug")

	var product models.Product
	if err := config.DB.Where("slug = ? AND is_active = ?", slug, true).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"data": gin.H{
			"jsonld":           utils.BuildProductJSONLD(&product),
			"meta_description": utils.MetaDescription(&product),
		},
	})
}

// GetSitemap lists canonical storefront URLs for active categories and
// products.
func GetSitemap(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	var products []models.Product
	if err := config.DB.Where("is_active = ?", true).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"data":    utils.BuildSitemapEntries(categories, products),
	})
}
