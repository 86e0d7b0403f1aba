package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Corporate bulk order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusInvoiced  = "invoiced"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ULID, used on invoices and in the admin UI
	Reference string `gorm:"column:reference;size:26;uniqueIndex;not null" json:"reference"`

	// Corporate buyer details
	CompanyName   string  `gorm:"column:company_name;size:255;not null" json:"company_name"`
	VatNumber     *string `gorm:"column:vat_number;size:50" json:"vat_number"`
	ContactPerson string  `gorm:"column:contact_person;size:255;not null" json:"contact_person"`
	Email         string  `gorm:"column:email;size:255;not null" json:"email"`
	Phone         *string `gorm:"column:phone;size:50" json:"phone"`

	DeliveryAddress string  `gorm:"column:delivery_address;type:text;not null" json:"delivery_address"`
	Notes           *string `gorm:"column:notes;type:text" json:"notes"`

	Status string `gorm:"column:status;size:20;default:pending;index" json:"status"`

	Total decimal.Decimal `gorm:"column:total;type:decimal(14,2);not null" json:"total"`

	// Snapshot of promotion applied at order time, if any
	PromotionSnapshot datatypes.JSON `gorm:"column:promotion_snapshot" json:"promotion_snapshot"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	// Timestamps & Soft Delete
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID   uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID uint    `gorm:"column:product_id;not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null" json:"unit_price"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// LineTotal returns quantity * unit price.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
