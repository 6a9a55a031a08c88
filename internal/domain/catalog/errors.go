package catalog

import "errors"

var (
	ErrBlankSKU         = errors.New("sku is required")
	ErrBlankName        = errors.New("name is required")
	ErrNegativePrice    = errors.New("price must be a non-negative number")
	ErrNegativeStock    = errors.New("stock must be a non-negative integer")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product already exists")
)
