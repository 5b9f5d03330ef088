package models

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	MenuID int    `json:"menu_id" binding:"required"`
	Qty    int    `json:"qty" binding:"required,min=1"`
	Note   string `json:"note"`
}

// Qty zero is meaningful (it removes the line), so the field must not carry
// a required binding.
type UpdateCartItemRequest struct {
	Qty  int    `json:"qty" binding:"min=0"`
	Note string `json:"note"`
}

type StartCartRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	TableNumber  string `json:"table_number" binding:"required"`
}

type CheckoutOptionsRequest struct {
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=cash qris"`
	OrderNote     string `json:"order_note"`
}

type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=baru diproses selesai batal"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=belum_bayar pending dibayar gagal"`
}

// CreateOrderRequest is the wire payload sent to the upstream
// POST /public/orders endpoint.
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name"`
	TableNumber   string                   `json:"table_number"`
	PaymentMethod string                   `json:"payment_method"`
	CustomerNote  *string                  `json:"customer_note"`
	Items         []CreateOrderItemRequest `json:"items"`
}

type CreateOrderItemRequest struct {
	MenuID int    `json:"menu_id"`
	Qty    int    `json:"qty"`
	Note   string `json:"note,omitempty"`
}
