package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Promotion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"column:name;size:255;not null" json:"name"`
	Code string `gorm:"column:code;size:50;uniqueIndex;not null" json:"code"`

	DiscountPercent int `gorm:"column:discount_percent;not null" json:"discount_percent"`

	// Product ids and optional category filters the promotion applies to
	Rules datatypes.JSON `gorm:"column:rules" json:"rules"`

	StartsAt time.Time  `gorm:"column:starts_at;index" json:"starts_at"`
	EndsAt   *time.Time `gorm:"column:ends_at;index" json:"ends_at"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

// IsRunning reports whether the promotion is live at the given time.
func (p *Promotion) IsRunning(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if now.Before(p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}
	return true
}
