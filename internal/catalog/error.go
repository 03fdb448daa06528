package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCategoryExists  = errors.New("category already exists")
	ErrSizeExists      = errors.New("size already exists")
	ErrCouponExists    = errors.New("coupon code already exists")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrEmptyName       = errors.New("name must not be empty")
)
