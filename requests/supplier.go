package requests

type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	VatNumber     *string `json:"vat_number"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateSupplierRequest is a partial patch. Deactivation cascades to
// the supplier's catalogs and their products; reactivation does not.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	VatNumber     *string `json:"vat_number"`
	IsActive      *bool   `json:"is_active"`
}
