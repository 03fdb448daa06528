package catalog

import "strings"

const (
	// FacetAll matches everything for any facet.
	FacetAll = "All"
	// CategoryDeals is a synthetic category matching discounted products.
	CategoryDeals = "Deals"
)

// Criteria is the composed storefront filter. All facets combine with
// logical AND. An empty facet value behaves like FacetAll. MaxPrice <= 0
// means no price ceiling.
type Criteria struct {
	Category string
	Size     string
	Color    string
	Brand    string
	MinPrice int
	MaxPrice int
	Search   string
}

func facetMatches(facet, value string) bool {
	return facet == "" || facet == FacetAll || facet == value
}

// Matches reports whether a single product satisfies the criteria.
func (c Criteria) Matches(p Product) bool {
	switch {
	case c.Category == "" || c.Category == FacetAll:
	case c.Category == CategoryDeals:
		if !p.IsDeal() {
			return false
		}
	default:
		if p.Category != c.Category {
			return false
		}
	}

	if c.Size != "" && c.Size != FacetAll && !hasSize(p, c.Size) {
		return false
	}
	if !facetMatches(c.Color, p.Color) {
		return false
	}
	if !facetMatches(c.Brand, p.Brand) {
		return false
	}
	if p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}

	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	return true
}

// hasSize: any variant carries the size with stock, or the legacy size
// list declares it.
func hasSize(p Product, size string) bool {
	for _, v := range p.Variants {
		for _, s := range v.Sizes {
			if s.Size == size && s.Stock > 0 {
				return true
			}
		}
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Filter returns the products matching the criteria, preserving the
// relative order of the input (stable filter, never a sort).
func Filter(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Page returns the cumulative window filtered[0 : offset+pageSize] for
// infinite-scroll reveal. It is a prefix, not a disjoint page.
func Page(filtered []Product, pageSize, offset int) []Product {
	if pageSize <= 0 {
		return []Product{}
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[:end]
}

// DefaultPageSize matches the storefront's initial reveal.
const DefaultPageSize = 12

// Pager tracks the cumulative reveal offset for one filtered view.
// Changing any filter criterion must go through Reset.
type Pager struct {
	pageSize int
	offset   int
}

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{pageSize: pageSize}
}

// Reset rewinds the view to the initial page size.
func (pg *Pager) Reset() {
	pg.offset = 0
}

// More grows the window by one page.
func (pg *Pager) More() {
	pg.offset += pg.pageSize
}

// Window applies the current offset to a filtered product list.
func (pg *Pager) Window(filtered []Product) []Product {
	return Page(filtered, pg.pageSize, pg.offset)
}
