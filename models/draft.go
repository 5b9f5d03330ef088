package models

import "time"

// DraftItem is one cart line in the not-yet-submitted order.
type DraftItem struct {
	MenuID int     `json:"menu_id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
	Note   string  `json:"note,omitempty"`
}

// CheckoutDraft is the customer's in-progress order. It is created on the
// first cart mutation, overwritten whole on every change, and cleared on
// successful submission or explicit reset.
type CheckoutDraft struct {
	CustomerName  string      `json:"customer_name"`
	TableNumber   string      `json:"table_number"`
	Items         []DraftItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	OrderNote     string      `json:"order_note,omitempty"`
}

// Total sums price*qty over the draft items.
func (d CheckoutDraft) Total() float64 {
	var total float64
	for _, item := range d.Items {
		total += item.Price * float64(item.Qty)
	}
	return total
}

// OrderSuccessPayload bridges the checkout submission to the success page
// and survives a reload. Status fields are merged in place as reconciliation
// observes transitions.
type OrderSuccessPayload struct {
	OrderID       int         `json:"order_id"`
	OrderCode     string      `json:"order_code"`
	CustomerName  string      `json:"customer_name"`
	TableNumber   string      `json:"table_number"`
	PaymentMethod string      `json:"payment_method"`
	Total         float64     `json:"total"`
	Items         []DraftItem `json:"items"`
	CustomerNote  string      `json:"customer_note,omitempty"`
	SnapToken     string      `json:"snap_token,omitempty"`
	Message       string      `json:"message,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	PaymentStatus string      `json:"payment_status,omitempty"`
	OrderStatus   string      `json:"order_status,omitempty"`
}

// PaymentCleared reports whether the payload has converged to a state where
// payment no longer needs verification.
func (p OrderSuccessPayload) PaymentCleared() bool {
	if p.PaymentStatus == PaymentStatusPaid {
		return true
	}
	return p.OrderStatus == OrderStatusProcessing || p.OrderStatus == OrderStatusDone
}

// PaymentDeadline is the QRIS invoice expiry, fixed at 15 minutes after the
// order was created.
func (p OrderSuccessPayload) PaymentDeadline() time.Time {
	return p.CreatedAt.Add(15 * time.Minute)
}
