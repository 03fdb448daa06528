package catalog

import (
	"context"

	"dripstore/internal/kv"
	"dripstore/internal/logger"

	"go.uber.org/zap"
)

// Persisted collection keys. The products/categories/coupons/sizes
// keys are seeded from the compiled-in defaults on first read.
const (
	keyProducts   = "dripstore_products"
	keyCategories = "dripstore_categories"
	keyCoupons    = "dripstore_coupons"
	keySizes      = "dripstore_sizes"
)

// Repository is whole-collection CRUD over the catalog. Saves are full
// overwrites; callers merge. That matches the single-user, single-tab
// deployment model.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	SaveProducts(ctx context.Context, products []Product) error
	ListCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error
	ListCoupons(ctx context.Context) ([]Coupon, error)
	SaveCoupons(ctx context.Context, coupons []Coupon) error
	ListSizes(ctx context.Context) ([]string, error)
	SaveSizes(ctx context.Context, sizes []string) error
	AddRating(ctx context.Context, productID string, rating int) ([]Product, error)
}

type repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) Repository {
	return &repository{store: store}
}

func (r *repository) ListProducts(ctx context.Context) ([]Product, error) {
	return kv.Load(ctx, r.store, keyProducts, SeedProducts)
}

func (r *repository) SaveProducts(ctx context.Context, products []Product) error {
	return kv.Save(ctx, r.store, keyProducts, products)
}

func (r *repository) ListCategories(ctx context.Context) ([]string, error) {
	return kv.Load(ctx, r.store, keyCategories, SeedCategories)
}

func (r *repository) SaveCategories(ctx context.Context, categories []string) error {
	return kv.Save(ctx, r.store, keyCategories, categories)
}

func (r *repository) ListCoupons(ctx context.Context) ([]Coupon, error) {
	return kv.Load(ctx, r.store, keyCoupons, SeedCoupons)
}

func (r *repository) SaveCoupons(ctx context.Context, coupons []Coupon) error {
	return kv.Save(ctx, r.store, keyCoupons, coupons)
}

func (r *repository) ListSizes(ctx context.Context) ([]string, error) {
	return kv.Load(ctx, r.store, keySizes, SeedSizes)
}

func (r *repository) SaveSizes(ctx context.Context, sizes []string) error {
	return kv.Save(ctx, r.store, keySizes, sizes)
}

// AddRating appends to the product's ratings sequence and persists the
// catalog. Unknown ids are a no-op; the unchanged catalog is returned
// so callers can refresh derived views either way.
func (r *repository) AddRating(ctx context.Context, productID string, rating int) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddRating"),
		zap.String("product_id", productID),
	)

	products, err := r.ListProducts(ctx)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		return nil, err
	}

	found := false
	for i := range products {
		if products[i].ID == productID {
			products[i].Ratings = append(products[i].Ratings, rating)
			found = true
			break
		}
	}
	if !found {
		log.Warn("rating for unknown product ignored")
		return products, nil
	}

	if err := r.SaveProducts(ctx, products); err != nil {
		log.Error("failed to save products", zap.Error(err))
		return nil, err
	}
	return products, nil
}
