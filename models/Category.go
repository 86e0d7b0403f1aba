package models

import (
	"time"

	"gorm.io/gorm"
)

// Category levels: 0 = top-level parent, 1 = child.
const (
	CategoryLevelParent = 0
	CategoryLevelChild  = 1
)

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Basic Information
	Name string `gorm:"column:name;size:255;not null" json:"name"`
	Slug string `gorm:"column:slug;size:255;uniqueIndex;not null" json:"slug"`

	// Tree structure (two levels: parent categories own child categories)
	ParentID *uint `gorm:"column:parent_id;index" json:"parent_id"`
	Level    int   `gorm:"column:level;default:0;index" json:"level"`

	Description *string `gorm:"column:description;type:text" json:"description"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

// IsParent reports whether the category sits at the top of the tree.
func (c *Category) IsParent() bool {
	return c.Level == CategoryLevelParent
}
