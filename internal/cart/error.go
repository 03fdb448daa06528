package cart

import "errors"

var (
	ErrOutOfStock      = errors.New("product is sold out")
	ErrSizeUnavailable = errors.New("size is not available")
	ErrLineNotFound    = errors.New("cart line not found")
)
