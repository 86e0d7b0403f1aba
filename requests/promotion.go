package requests

import "time"

type CreatePromotionRequest struct {
	Name            string     `json:"name" binding:"required"`
	Code            string     `json:"code" binding:"required"`
	DiscountPercent int        `json:"discount_percent" binding:"required,gt=0,lte=100"`
	ProductIDs      []uint     `json:"product_ids"`
	CategoryIDs     []uint     `json:"category_ids"`
	StartsAt        time.Time  `json:"starts_at" binding:"required"`
	EndsAt          *time.Time `json:"ends_at"`
	IsActive        *bool      `json:"is_active"`
}

type UpdatePromotionRequest struct {
	Name            *string    `json:"name"`
	DiscountPercent *int       `json:"discount_percent" binding:"omitempty,gt=0,lte=100"`
	ProductIDs      []uint     `json:"product_ids"`
	CategoryIDs     []uint     `json:"category_ids"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	IsActive        *bool      `json:"is_active"`
}
