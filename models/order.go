package models

import (
	"fmt"
	"time"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodQRIS = "qris"

	PaymentStatusUnpaid  = "belum_bayar"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "dibayar"
	PaymentStatusFailed  = "gagal"

	OrderStatusNew        = "baru"
	OrderStatusProcessing = "diproses"
	OrderStatusDone       = "selesai"
	OrderStatusCancelled  = "batal"
)

// Order is owned by the upstream API; the front-end only observes it through
// polling snapshots, so status fields may arrive out of order or repeated.
type Order struct {
	ID            int         `json:"id"`
	OrderNumber   string      `json:"order_number,omitempty"`
	CustomerName  string      `json:"customer_name,omitempty"`
	TableNumber   string      `json:"table_number,omitempty"`
	CustomerNote  *string     `json:"customer_note,omitempty"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	OrderStatus   string      `json:"order_status"`
	SnapToken     *string     `json:"snap_token,omitempty"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	OrderID  int     `json:"order_id"`
	MenuID   int     `json:"menu_id"`
	MenuName string  `json:"menu_name,omitempty"`
	Quantity int     `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
	Note     *string `json:"note,omitempty"`
}

func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// Code returns the displayable order number, falling back to ORD-<id> when
// the upstream did not assign one.
func (o Order) Code() string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	return fmt.Sprintf("ORD-%d", o.ID)
}
