package order

import (
	"context"
	"sort"

	"dripstore/internal/kv"
	"dripstore/internal/logger"

	"go.uber.org/zap"
)

const keyOrders = "dripstore_orders"

// Repository is an append-only order log. Orders are never deleted;
// only Status changes after creation.
type Repository interface {
	Append(ctx context.Context, o Order) error
	ListAll(ctx context.Context) ([]Order, error)
	ListForUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error)
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Append(ctx context.Context, o Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Append"),
		zap.String("order_id", o.ID),
	)

	orders, err := r.ListAll(ctx)
	if err != nil {
		log.Error("failed to load orders", zap.Error(err))
		return err
	}

	if err := kv.Save(ctx, r.store, keyOrders, append(orders, o)); err != nil {
		log.Error("failed to save orders", zap.Error(err))
		return err
	}
	log.Info("order appended", zap.Int("items", len(o.Items)))
	return nil
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return kv.Load[[]Order](ctx, r.store, keyOrders, nil)
}

// ListForUser returns the user's orders most-recent-first. Equal
// timestamps keep append order.
func (r *repository) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	orders, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})
	return mine, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", orderID),
		zap.String("status", string(status)),
	)

	if !KnownStatus(status) {
		return Order{}, ErrUnknownStatus
	}

	orders, err := r.ListAll(ctx)
	if err != nil {
		return Order{}, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := kv.Save(ctx, r.store, keyOrders, orders); err != nil {
				log.Error("failed to save orders", zap.Error(err))
				return Order{}, err
			}
			log.Info("order status updated")
			return orders[i], nil
		}
	}
	return Order{}, ErrOrderNotFound
}
