package catalog

type CouponType string

const (
	CouponPercentage CouponType = "PERCENTAGE"
	CouponFixed      CouponType = "FIXED"
)

// Coupon codes are stored normalized to upper case and matched
// case-insensitively. PERCENTAGE values are interpreted 0-100, FIXED
// values are an absolute amount in the same unit as Product.Price.
type Coupon struct {
	Code  string     `json:"code" validate:"required"`
	Type  CouponType `json:"type" validate:"required,oneof=PERCENTAGE FIXED"`
	Value float64    `json:"value" validate:"gte=0"`
}

type VariantSize struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// ProductVariant is a style/colorway of a product with its own image
// gallery and per-size stock. An empty image list falls back to the
// product gallery.
type ProductVariant struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Images []string      `json:"images"`
	Sizes  []VariantSize `json:"sizes"`
}

// Product is a catalog entry ("drop"). When Variants is non-empty,
// Stock and Sizes are aggregates recomputed from the variants on every
// admin save; otherwise the legacy Sizes/Stock fields are authoritative.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name" validate:"required"`
	Slug          string           `json:"slug,omitempty"`
	Description   string           `json:"description"`
	Price         int              `json:"price" validate:"gt=0"`
	OriginalPrice int              `json:"originalPrice,omitempty" validate:"gte=0"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	Color         string           `json:"color"`
	Images        []string         `json:"images"`
	Sizes         []string         `json:"sizes"`
	Stock         int              `json:"stock" validate:"gte=0"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	Ratings       []int            `json:"ratings"`
	IsNewDrop     bool             `json:"isNewDrop,omitempty"`
	SEOTitle      string           `json:"seoTitle,omitempty"`
	SEOKeywords   []string         `json:"seoKeywords,omitempty"`
}

func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// IsDeal reports whether the product carries a visible discount.
func (p Product) IsDeal() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice > p.Price
}

// SoldOut is the aggregate gate: it wins over any per-variant stock.
func (p Product) SoldOut() bool {
	return p.Stock <= 0
}

// AverageRating is computed on demand, never stored.
func (p Product) AverageRating() float64 {
	if len(p.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Ratings {
		sum += r
	}
	return float64(sum) / float64(len(p.Ratings))
}
