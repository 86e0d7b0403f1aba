package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Basic Information
	Name        string  `gorm:"column:name;size:255;not null" json:"name"`
	Slug        string  `gorm:"column:slug;size:255;uniqueIndex;not null" json:"slug"`
	Sku         string  `gorm:"column:sku;size:100;uniqueIndex;not null" json:"sku"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Brand       *string `gorm:"column:brand;size:255" json:"brand"`

	// Ownership
	CategoryID uint     `gorm:"column:category_id;not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CatalogID  *uint    `gorm:"column:catalog_id;index" json:"catalog_id"`
	Catalog    *Catalog `gorm:"foreignKey:CatalogID" json:"catalog,omitempty"`

	// Pricing (ZAR)
	Price        decimal.Decimal `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	ComparePrice *decimal.Decimal `gorm:"column:compare_price;type:decimal(12,2)" json:"compare_price"`

	// Stock
	StockQuantity int `gorm:"column:stock_quantity;default:0" json:"stock_quantity"`

	// Images (Cloudinary)
	ImageURL      *string `gorm:"column:image_url;size:255" json:"image_url"`
	ImagePublicID *string `gorm:"column:image_public_id;size:255" json:"image_public_id"`
	ThumbnailURL  *string `gorm:"column:thumbnail_url;size:255" json:"thumbnail_url"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// InStock reports whether the product can currently be ordered.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}
