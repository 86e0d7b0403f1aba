package requests

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest places a corporate bulk order. Pricing is taken
// from the product rows at order time, never from the client.
type CreateOrderRequest struct {
	CompanyName     string  `json:"company_name" binding:"required"`
	VatNumber       *string `json:"vat_number"`
	ContactPerson   string  `json:"contact_person" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           *string `json:"phone"`
	DeliveryAddress string  `json:"delivery_address" binding:"required"`
	Notes           *string `json:"notes"`
	PromotionCode   *string `json:"promotion_code"`

	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed invoiced shipped cancelled"`
}
