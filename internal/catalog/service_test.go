package catalog

import (
	"context"
	"testing"

	"dripstore/internal/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewRepository(kv.NewMemStore()))
}

func TestService_SaveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesAggregatesFromVariants", func(t *testing.T) {
		svc := newTestService(t)

		p := Product{
			Name:  "Acid Wash Tee",
			Brand: "NEON WAVE",
			Price: 1499,
			// Hand-edited aggregates that must not survive the save.
			Stock: 999,
			Sizes: []string{"XXL"},
			Variants: []ProductVariant{
				{Name: "Faded", Sizes: []VariantSize{{Size: "M", Stock: 3}, {Size: "L", Stock: 4}}},
				{Name: "Raw", Sizes: []VariantSize{{Size: "L", Stock: 2}}},
			},
		}

		saved, err := svc.SaveProduct(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, 9, saved.Stock)
		assert.Equal(t, []string{"M", "L"}, saved.Sizes)
		assert.NotEmpty(t, saved.Variants[0].ID)

		// Save -> reload round-trip preserves the invariant.
		products, err := svc.Products(ctx)
		require.NoError(t, err)
		assert.Equal(t, AggregateStock(products[0].Variants), products[0].Stock)
	})

	t.Run("NewProductIsPrepended", func(t *testing.T) {
		svc := newTestService(t)

		saved, err := svc.SaveProduct(ctx, Product{Name: "Fresh Drop", Brand: "DRIP ORIGINALS", Price: 100, Stock: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "drip-fresh-drop", saved.Slug)
		assert.Equal(t, []string{placeholderImage}, saved.Images)
		assert.NotNil(t, saved.Ratings)

		products, err := svc.Products(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, products[0].ID)
		assert.Len(t, products, 7)
	})

	t.Run("UpdateReplacesByID", func(t *testing.T) {
		svc := newTestService(t)
		products, err := svc.Products(ctx)
		require.NoError(t, err)

		edited := products[1]
		edited.Price = 4999

		_, err = svc.SaveProduct(ctx, edited)
		require.NoError(t, err)

		products, err = svc.Products(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4999, products[1].Price)
		assert.Len(t, products, 6)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.SaveProduct(ctx, Product{ID: "ghost", Name: "Ghost", Price: 1, Stock: 1})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("RejectsInvalidProduct", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.SaveProduct(ctx, Product{Name: "", Price: 100})
		assert.Error(t, err)

		_, err = svc.SaveProduct(ctx, Product{Name: "No Price", Price: 0})
		assert.Error(t, err)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	kept, err := svc.DeleteProduct(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, kept, 5)
	for _, p := range kept {
		assert.NotEqual(t, "1", p.ID)
	}

	_, err = svc.DeleteProduct(ctx, "1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_RateProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.RateProduct(ctx, "1", 0)
	assert.ErrorIs(t, err, ErrInvalidRating)
	_, err = svc.RateProduct(ctx, "1", 6)
	assert.ErrorIs(t, err, ErrInvalidRating)

	products, err := svc.RateProduct(ctx, "1", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 4, 5, 3}, products[0].Ratings)
}

func TestService_Categories(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("Add", func(t *testing.T) {
		categories, err := svc.AddCategory(ctx, "Outerwear")
		require.NoError(t, err)
		assert.Contains(t, categories, "Outerwear")
	})

	t.Run("DuplicateCaseInsensitive", func(t *testing.T) {
		_, err := svc.AddCategory(ctx, "outerwear")
		assert.ErrorIs(t, err, ErrCategoryExists)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := svc.AddCategory(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("Remove", func(t *testing.T) {
		categories, err := svc.RemoveCategory(ctx, "Outerwear")
		require.NoError(t, err)
		assert.NotContains(t, categories, "Outerwear")
	})
}

func TestService_Coupons(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("AddNormalizesCodeToUpper", func(t *testing.T) {
		coupons, err := svc.AddCoupon(ctx, Coupon{Code: "flash20", Type: CouponPercentage, Value: 20})
		require.NoError(t, err)
		assert.Equal(t, "FLASH20", coupons[len(coupons)-1].Code)

		// Round-trip through the store keeps the normalized code.
		reloaded, err := svc.Coupons(ctx)
		require.NoError(t, err)
		assert.Equal(t, "FLASH20", reloaded[len(reloaded)-1].Code)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		_, err := svc.AddCoupon(ctx, Coupon{Code: "Flash20", Type: CouponFixed, Value: 50})
		assert.ErrorIs(t, err, ErrCouponExists)
	})

	t.Run("RejectsInvalidType", func(t *testing.T) {
		_, err := svc.AddCoupon(ctx, Coupon{Code: "BAD", Type: "BOGOF", Value: 1})
		assert.Error(t, err)
	})

	t.Run("RemoveIsCaseInsensitive", func(t *testing.T) {
		coupons, err := svc.RemoveCoupon(ctx, "flash20")
		require.NoError(t, err)
		for _, c := range coupons {
			assert.NotEqual(t, "FLASH20", c.Code)
		}
	})
}

func TestService_Sizes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	sizes, err := svc.AddSize(ctx, "US 13")
	require.NoError(t, err)
	assert.Contains(t, sizes, "US 13")

	_, err = svc.AddSize(ctx, "us 13")
	assert.ErrorIs(t, err, ErrSizeExists)

	sizes, err = svc.RemoveSize(ctx, "US 13")
	require.NoError(t, err)
	assert.NotContains(t, sizes, "US 13")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "drip-cyberpunk-oversized-tee", Slugify("Cyberpunk Oversized Tee", "DRIP ORIGINALS"))
	assert.Equal(t, "speed-velocity-runner-v1", Slugify("Velocity Runner V1", "SPEED INC"))
	assert.Equal(t, "plain-name", Slugify("  Plain  Name! ", ""))
}
