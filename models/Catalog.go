package models

import (
	"time"

	"gorm.io/gorm"
)

type Catalog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SupplierID uint     `gorm:"column:supplier_id;not null;index" json:"supplier_id"`
	Supplier   Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	Name        string  `gorm:"column:name;size:255;not null" json:"name"`
	Season      *string `gorm:"column:season;size:50" json:"season"`
	Year        *int    `gorm:"column:year" json:"year"`
	Description *string `gorm:"column:description;type:text" json:"description"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
