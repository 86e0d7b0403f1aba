package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/cascade"
	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/requests"
	"github.com/LearnPlayAI/HeartCart-sub006/storage"
	"github.com/LearnPlayAI/HeartCart-sub006/utils"
	"github.com/LearnPlayAI/HeartCart-sub006/websocket"
)

// GetCategoriesHome returns active categories for the storefront.
func GetCategoriesHome(c *gin.Context) {
	categories, err := Store.GetAllCategories(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": categories})
}

// GetCategoryTree returns active parent categories with their active
// children nested, for the storefront navigation.
func GetCategoryTree(c *gin.Context) {
	var categories []models.Category
	err := config.DB.Where("is_active = ?", true).Order("name asc").Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch categories"})
		return
	}

	type node struct {
		models.Category
		Children []models.Category `json:"children"`
	}

	var tree []node
	for i := range categories {
		if !categories[i].IsParent() {
			continue
		}
		n := node{Category: categories[i], Children: []models.Category{}}
		for j := range categories {
			if categories[j].ParentID != nil && *categories[j].ParentID == categories[i].ID {
				n.Children = append(n.Children, categories[j])
			}
		}
		tree = append(tree, n)
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": tree})
}

// GetCategories returns all categories, active or not, for the admin
// UI.
func GetCategories(c *gin.Context) {
	categories, err := Store.GetAllCategories(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "OK",
		"data":    categories,
	})
}

func CreateCategory(c *gin.Context) {
	var req requests.CreateCategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	level := models.CategoryLevelParent
	if req.ParentID != nil {
		var parent models.Category
		if err := config.DB.First(&parent, *req.ParentID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Parent category not found"})
			return
		}
		if !parent.IsParent() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Categories only nest one level deep"})
			return
		}
		level = models.CategoryLevelChild
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		ParentID:    req.ParentID,
		Level:       level,
		Description: req.Description,
		IsActive:    isActive,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create category",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Category created",
		"data":    category,
	})
}

func UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req requests.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var category models.Category
	result := config.DB.Where("id = ?", id).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Category not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch category",
			})
		}
		return
	}

	category.Name = req.Name
	category.Slug = utils.Slugify(req.Name)
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update category",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category updated",
		"data":    category,
	})
}

// DeleteCategory soft-deletes: rows are never removed, the category
// and its subtree are deactivated through the cascade.
func DeleteCategory(c *gin.Context) {
	categoryID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	var result *cascade.CategoryResult
	err := Store.WithinTransaction(c.Request.Context(), func(tx storage.Store) error {
		var err error
		result, err = cascade.New(tx).CategoryVisibility(c.Request.Context(), categoryID, false, true)
		return err
	})
	if err != nil {
		respondCascadeError(c, err, "Category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":               "Category deactivated",
		"products_updated":      result.ProductsUpdated,
		"subcategories_updated": result.SubcategoriesUpdated,
	})
}

// UpdateCategoryVisibility toggles a category and, by default,
// cascades the change through its subtree.
//
// PUT /api/categories/:id/visibility
func UpdateCategoryVisibility(c *gin.Context) {
	categoryID, ok := parsePositiveID(c)
	if !ok {
		return
	}

	var req requests.CategoryVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var result *cascade.CategoryResult
	err := Store.WithinTransaction(c.Request.Context(), func(tx storage.Store) error {
		var err error
		result, err = cascade.New(tx).CategoryVisibility(c.Request.Context(), categoryID, *req.IsActive, req.CascadeOrDefault())
		return err
	})
	if err != nil {
		respondCascadeError(c, err, "Category")
		return
	}

	websocket.BroadcastEvent("cascade", gin.H{
		"entity":                "category",
		"id":                    result.Category.ID,
		"is_active":             result.Category.IsActive,
		"products_updated":      result.ProductsUpdated,
		"subcategories_updated": result.SubcategoriesUpdated,
	})

	cat := result.Category
	c.JSON(http.StatusOK, gin.H{
		"id":                    cat.ID,
		"name":                  cat.Name,
		"slug":                  cat.Slug,
		"parent_id":             cat.ParentID,
		"level":                 cat.Level,
		"is_active":             cat.IsActive,
		"created_at":            cat.CreatedAt,
		"updated_at":            cat.UpdatedAt,
		"products_updated":      result.ProductsUpdated,
		"subcategories_updated": result.SubcategoriesUpdated,
		"cascaded":              result.Cascaded,
	})
}

// parsePositiveID reads the :id route param as a positive integer,
// responding 400 on anything else.
func parsePositiveID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondCascadeError maps gateway errors onto the wire: missing rows
// are 404, everything else is a generic 500 with the cause logged
// server-side only.
func respondCascadeError(c *gin.Context, err error, entity string) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
		return
	}
	log.Printf("cascade failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
