package models

import (
	"time"

	"gorm.io/gorm"
)

type Supplier struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `gorm:"column:name;size:255;not null" json:"name"`
	ContactPerson *string `gorm:"column:contact_person;size:255" json:"contact_person"`
	Email         *string `gorm:"column:email;size:255" json:"email"`
	Phone         *string `gorm:"column:phone;size:50" json:"phone"`
	Address       *string `gorm:"column:address;type:text" json:"address"`
	VatNumber     *string `gorm:"column:vat_number;size:50" json:"vat_number"`

	IsActive bool `gorm:"column:is_active;default:true;index" json:"is_active"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
