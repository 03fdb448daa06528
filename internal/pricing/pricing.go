package pricing

import (
	"errors"
	"math"
	"strings"

	"dripstore/internal/catalog"
)

var ErrInvalidCoupon = errors.New("invalid coupon code")

// Quote is a priced cart: subtotal, applied discount and the floored
// total, all in minor-unit-free currency.
type Quote struct {
	Subtotal int
	Discount int
	Total    int
}

// FindCoupon matches code against the coupon list case-insensitively.
func FindCoupon(coupons []catalog.Coupon, code string) (*catalog.Coupon, error) {
	for _, c := range coupons {
		if strings.EqualFold(c.Code, code) {
			c := c
			return &c, nil
		}
	}
	return nil, ErrInvalidCoupon
}

// Apply computes the discount for an optional coupon. A PERCENTAGE
// value is taken against the subtotal; a FIXED value is absolute and
// deliberately uncapped, the zero floor on the total is the only
// protection. No coupon means no discount.
func Apply(subtotal int, c *catalog.Coupon) Quote {
	discount := 0
	if c != nil {
		switch c.Type {
		case catalog.CouponPercentage:
			discount = int(math.Round(float64(subtotal) * c.Value / 100))
		case catalog.CouponFixed:
			discount = int(math.Round(c.Value))
		}
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Quote{Subtotal: subtotal, Discount: discount, Total: total}
}
