package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dripstore/internal/cart"
	"dripstore/internal/catalog"
	"dripstore/internal/logger"
	"dripstore/internal/order"
	"dripstore/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service finalizes a cart: it snapshots the lines into an immutable
// order and composes the messaging-app summary the storefront hands to
// the wa.me deep link.
type Service interface {
	PlaceOrder(ctx context.Context, userID string, items []cart.Item, coupon *catalog.Coupon) (order.Order, error)
	ComposeMessage(items []cart.Item, coupon *catalog.Coupon, total int) string
	DeepLink(message string) string
}

type service struct {
	orders   order.Repository
	waNumber string
}

func NewService(orders order.Repository, waNumber string) Service {
	return &service{orders: orders, waNumber: waNumber}
}

// PlaceOrder prices the cart and appends a PENDING order holding a
// deep copy of the lines.
func (s *service) PlaceOrder(ctx context.Context, userID string, items []cart.Item, coupon *catalog.Coupon) (order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.String("user_id", userID),
	)

	if len(items) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	quote := pricing.Apply(subtotal, coupon)

	couponCode := ""
	if coupon != nil {
		couponCode = coupon.Code
	}

	o := order.Order{
		ID:             uuid.New().String(),
		UserID:         userID,
		Items:          append([]cart.Item(nil), items...),
		TotalAmount:    quote.Subtotal,
		DiscountAmount: quote.Discount,
		FinalAmount:    quote.Total,
		CouponCode:     couponCode,
		Status:         order.StatusPending,
		Date:           time.Now().UTC(),
	}

	if err := s.orders.Append(ctx, o); err != nil {
		log.Error("failed to append order", zap.Error(err))
		return order.Order{}, err
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("final_amount", o.FinalAmount),
	)
	return o, nil
}

// ComposeMessage renders the human-readable order summary.
func (s *service) ComposeMessage(items []cart.Item, coupon *catalog.Coupon, total int) string {
	var b strings.Builder
	b.WriteString("*New Order from that store.*\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("• %s (%s", item.Name, item.SelectedSize))
		if item.SelectedVariantName != "" {
			b.WriteString(", " + item.SelectedVariantName)
		}
		b.WriteString(fmt.Sprintf(") x%d - ₹%d\n", item.Quantity, item.LineTotal()))
	}
	if coupon != nil {
		b.WriteString(fmt.Sprintf("*Coupon:* %s\n", coupon.Code))
	}
	b.WriteString(fmt.Sprintf("*Total: ₹%d*", total))
	return b.String()
}

// DeepLink wraps the summary in a wa.me URL.
func (s *service) DeepLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.waNumber, url.QueryEscape(message))
}
