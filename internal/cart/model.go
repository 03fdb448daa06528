package cart

// Item is one cart line: a snapshot of the product taken at add time
// plus the selection. Later catalog edits never alter it. Line
// identity for merging is (ProductID, SelectedSize, SelectedVariantID).
type Item struct {
	ProductID           string `json:"productId"`
	Name                string `json:"name"`
	Brand               string `json:"brand"`
	Price               int    `json:"price"`
	Image               string `json:"image,omitempty"`
	SelectedSize        string `json:"selectedSize"`
	SelectedVariantID   string `json:"selectedVariantId,omitempty"`
	SelectedVariantName string `json:"selectedVariantName,omitempty"`
	Quantity            int    `json:"quantity"`
}

func (i Item) LineTotal() int {
	return i.Price * i.Quantity
}

func (i Item) matches(productID, size, variantID string) bool {
	return i.ProductID == productID &&
		i.SelectedSize == size &&
		i.SelectedVariantID == variantID
}
