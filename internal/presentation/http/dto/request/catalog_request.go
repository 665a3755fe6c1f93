package request

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// CreateItemRequest represents a catalog item creation request
type CreateItemRequest struct {
	Code  string `json:"code" binding:"omitempty,max=100"`
	Name  string `json:"name" binding:"required,max=255"`
	Price Amount `json:"price"`
	Unit  string `json:"unit" binding:"omitempty,max=50"`
}

// UpdateItemRequest represents a catalog item update request
type UpdateItemRequest struct {
	Code  *string `json:"code" binding:"omitempty,max=100"`
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Price *Amount `json:"price"`
	Unit  *string `json:"unit" binding:"omitempty,max=50"`
}
