package order

import (
	"time"

	"dripstore/internal/cart"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// KnownStatus reports whether s is one of the defined statuses.
func KnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is immutable once created except for Status. Items are deep
// copies of the cart lines at checkout time; later catalog edits never
// rewrite history.
type Order struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId"`
	Items          []cart.Item `json:"items"`
	TotalAmount    int         `json:"totalAmount"`
	DiscountAmount int         `json:"discountAmount"`
	FinalAmount    int         `json:"finalAmount"`
	CouponCode     string      `json:"couponCode,omitempty"`
	Status         Status      `json:"status"`
	Date           time.Time   `json:"date"`
}
