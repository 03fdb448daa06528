package catalog

import (
	"context"
	"fmt"
	"strings"

	"dripstore/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const placeholderImage = "https://picsum.photos/800/1000"

// Service is the admin console surface over the catalog. Every save
// re-derives the variant aggregates so the stock invariant holds after
// any edit.
type Service interface {
	Products(ctx context.Context) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Sizes(ctx context.Context) ([]string, error)
	Coupons(ctx context.Context) ([]Coupon, error)

	SaveProduct(ctx context.Context, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id string) ([]Product, error)
	RateProduct(ctx context.Context, productID string, rating int) ([]Product, error)

	AddCategory(ctx context.Context, name string) ([]string, error)
	RemoveCategory(ctx context.Context, name string) ([]string, error)
	AddSize(ctx context.Context, size string) ([]string, error)
	RemoveSize(ctx context.Context, size string) ([]string, error)
	AddCoupon(ctx context.Context, c Coupon) ([]Coupon, error)
	RemoveCoupon(ctx context.Context, code string) ([]Coupon, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{repo: repo, validate: validator.New()}
}

func (s *service) Products(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) Sizes(ctx context.Context) ([]string, error) {
	return s.repo.ListSizes(ctx)
}

func (s *service) Coupons(ctx context.Context) ([]Coupon, error) {
	return s.repo.ListCoupons(ctx)
}

// SaveProduct creates or replaces a product. New products are
// prepended so the latest drop leads the catalog. When variants exist,
// Stock and Sizes are recomputed from them; hand-edited aggregates
// never survive a save.
func (s *service) SaveProduct(ctx context.Context, p Product) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SaveProduct"),
		zap.String("name", p.Name),
	)

	if err := s.validate.Struct(p); err != nil {
		log.Warn("invalid product", zap.Error(err))
		return Product{}, fmt.Errorf("invalid product: %w", err)
	}

	if p.HasVariants() {
		p.Stock = AggregateStock(p.Variants)
		p.Sizes = AggregateSizes(p.Variants)
		for i := range p.Variants {
			if p.Variants[i].ID == "" {
				p.Variants[i].ID = uuid.New().String()
			}
		}
	}
	p.Slug = Slugify(p.Name, p.Brand)
	if len(p.Images) == 0 {
		p.Images = []string{placeholderImage}
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		return Product{}, err
	}

	if p.ID == "" {
		p.ID = uuid.New().String()
		if p.Ratings == nil {
			p.Ratings = []int{}
		}
		products = append([]Product{p}, products...)
	} else {
		found := false
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = p
				found = true
				break
			}
		}
		if !found {
			log.Warn("product to update not found")
			return Product{}, ErrProductNotFound
		}
	}

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		log.Error("failed to save products", zap.Error(err))
		return Product{}, err
	}

	log.Info("product saved", zap.String("product_id", p.ID), zap.Int("stock", p.Stock))
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.String("product_id", id),
	)

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return nil, ErrProductNotFound
	}

	if err := s.repo.SaveProducts(ctx, kept); err != nil {
		log.Error("failed to save products", zap.Error(err))
		return nil, err
	}
	log.Info("product deleted")
	return kept, nil
}

func (s *service) RateProduct(ctx context.Context, productID string, rating int) ([]Product, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return s.repo.AddRating(ctx, productID, rating)
}

func (s *service) AddCategory(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return nil, ErrCategoryExists
		}
	}

	categories = append(categories, name)
	if err := s.repo.SaveCategories(ctx, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *service) RemoveCategory(ctx context.Context, name string) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(categories))
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	if err := s.repo.SaveCategories(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *service) AddSize(ctx context.Context, size string) ([]string, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return nil, ErrEmptyName
	}

	sizes, err := s.repo.ListSizes(ctx)
	if err != nil {
		return nil, err
	}
	for _, sz := range sizes {
		if strings.EqualFold(sz, size) {
			return nil, ErrSizeExists
		}
	}

	sizes = append(sizes, size)
	if err := s.repo.SaveSizes(ctx, sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *service) RemoveSize(ctx context.Context, size string) ([]string, error) {
	sizes, err := s.repo.ListSizes(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(sizes))
	for _, sz := range sizes {
		if sz != size {
			kept = append(kept, sz)
		}
	}
	if err := s.repo.SaveSizes(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// AddCoupon stores the code normalized to upper case; lookups are
// case-insensitive, so duplicates are rejected the same way.
func (s *service) AddCoupon(ctx context.Context, c Coupon) ([]Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCoupon"),
		zap.String("code", c.Code),
	)

	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if err := s.validate.Struct(c); err != nil {
		log.Warn("invalid coupon", zap.Error(err))
		return nil, fmt.Errorf("invalid coupon: %w", err)
	}

	coupons, err := s.repo.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range coupons {
		if strings.EqualFold(existing.Code, c.Code) {
			return nil, ErrCouponExists
		}
	}

	coupons = append(coupons, c)
	if err := s.repo.SaveCoupons(ctx, coupons); err != nil {
		log.Error("failed to save coupons", zap.Error(err))
		return nil, err
	}
	log.Info("coupon created")
	return coupons, nil
}

func (s *service) RemoveCoupon(ctx context.Context, code string) ([]Coupon, error) {
	coupons, err := s.repo.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]Coupon, 0, len(coupons))
	for _, c := range coupons {
		if !strings.EqualFold(c.Code, code) {
			kept = append(kept, c)
		}
	}
	if err := s.repo.SaveCoupons(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
