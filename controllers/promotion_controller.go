package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LearnPlayAI/HeartCart-sub006/config"
	"github.com/LearnPlayAI/HeartCart-sub006/models"
	"github.com/LearnPlayAI/HeartCart-sub006/requests"
)

// promotionRules is the JSON shape stored on the promotion row.
type promotionRules struct {
	ProductIDs  []uint `json:"product_ids"`
	CategoryIDs []uint `json:"category_ids"`
}

// GetPromotionsHome returns currently running promotions for the
// storefront.
func GetPromotionsHome(c *gin.Context) {
	var promotions []models.Promotion
	now := time.Now()
	err := config.DB.
		Where("is_active = ?", true).
		Where("starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Find(&promotions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch promotions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": promotions})
}

func GetPromotions(c *gin.Context) {
	var promotions []models.Promotion
	if err := config.DB.Order("starts_at desc").Find(&promotions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch promotions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OK", "data": promotions})
}

func CreatePromotion(c *gin.Context) {
	var req requests.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	rules, err := json.Marshal(promotionRules{
		ProductIDs:  req.ProductIDs,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to encode rules"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promotion := models.Promotion{
		Name:            req.Name,
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Rules:           rules,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		IsActive:        isActive,
	}

	if err := config.DB.Create(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create promotion"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Promotion created", "data": promotion})
}

func UpdatePromotion(c *gin.Context) {
	id := c.Param("id")

	var req requests.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	var promotion models.Promotion
	result := config.DB.Where("id = ?", id).First(&promotion)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Promotion not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch promotion"})
		}
		return
	}

	if req.Name != nil {
		promotion.Name = *req.Name
	}
	if req.DiscountPercent != nil {
		promotion.DiscountPercent = *req.DiscountPercent
	}
	if req.ProductIDs != nil || req.CategoryIDs != nil {
		rules, err := json.Marshal(promotionRules{
			ProductIDs:  req.ProductIDs,
			CategoryIDs: req.CategoryIDs,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to encode rules"})
			return
		}
		promotion.Rules = rules
	}
	if req.StartsAt != nil {
		promotion.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		promotion.EndsAt = req.EndsAt
	}
	if req.IsActive != nil {
		promotion.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&promotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update promotion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promotion updated", "data": promotion})
}

// DeletePromotion soft-deletes by deactivating.
func DeletePromotion(c *gin.Context) {
	id := c.Param("id")

	var promotion models.Promotion
	if err := config.DB.First(&promotion, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Promotion not found"})
		return
	}

	if err := config.DB.Model(&promotion).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to deactivate promotion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promotion deactivated"})
}
