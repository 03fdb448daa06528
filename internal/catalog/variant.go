package catalog

// DefaultVariant returns a copy of the first declared variant, used to
// initialize the selection when a product detail view opens. Nil for
// legacy products.
func DefaultVariant(p Product) *ProductVariant {
	if len(p.Variants) == 0 {
		return nil
	}
	v := p.Variants[0]
	return &v
}

// VariantByID looks a variant up within the product. Nil when absent.
func VariantByID(p Product, variantID string) *ProductVariant {
	for _, v := range p.Variants {
		if v.ID == variantID {
			v := v
			return &v
		}
	}
	return nil
}

// EffectiveImages resolves the gallery for the current selection: a
// variant with its own images wins, otherwise the product gallery.
func EffectiveImages(p Product, v *ProductVariant) []string {
	if v != nil && len(v.Images) > 0 {
		return v.Images
	}
	return p.Images
}

// EffectiveSizes resolves the purchasable size labels for the current
// selection. Under a variant only sizes with stock remain, in the
// variant's declared order. Legacy products expose their size list
// verbatim; they have no per-size stock, so availability is gated only
// by the aggregate Stock (the caller's sold-out check).
func EffectiveSizes(p Product, v *ProductVariant) []string {
	if v == nil {
		return p.Sizes
	}
	sizes := make([]string, 0, len(v.Sizes))
	for _, s := range v.Sizes {
		if s.Stock > 0 {
			sizes = append(sizes, s.Size)
		}
	}
	return sizes
}

// SizeAvailable reports whether the given size can be purchased for
// the selection. The aggregate sold-out gate is checked first and wins
// regardless of per-variant data.
func SizeAvailable(p Product, v *ProductVariant, size string) bool {
	if p.SoldOut() {
		return false
	}
	for _, s := range EffectiveSizes(p, v) {
		if s == size {
			return true
		}
	}
	return false
}

// AggregateStock sums per-size stock across all variants.
func AggregateStock(variants []ProductVariant) int {
	total := 0
	for _, v := range variants {
		for _, s := range v.Sizes {
			total += s.Stock
		}
	}
	return total
}

// AggregateSizes is the ordered union of size labels across variants,
// first occurrence wins.
func AggregateSizes(variants []ProductVariant) []string {
	seen := make(map[string]bool)
	sizes := []string{}
	for _, v := range variants {
		for _, s := range v.Sizes {
			if !seen[s.Size] {
				seen[s.Size] = true
				sizes = append(sizes, s.Size)
			}
		}
	}
	return sizes
}
