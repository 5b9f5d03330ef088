package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// OrderResponse is the upstream body for POST /public/orders.
type OrderResponse struct {
	Message   string  `json:"message"`
	Order     Order   `json:"order"`
	SnapToken *string `json:"snap_token,omitempty"`
}

// MarkPaidResponse is the upstream body for POST /public/orders/:id/mark-paid.
type MarkPaidResponse struct {
	Message string `json:"message,omitempty"`
	Order   Order  `json:"order"`
}
