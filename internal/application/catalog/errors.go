package catalog

import "errors"

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrProductNotFound  = errors.New("product not found")
	ErrGetProductByID   = errors.New("failed to get product by id")
	ErrCreateProduct    = errors.New("failed to create product")
	ErrInvalidPrice     = errors.New("price must be a non-negative number")
	ErrInvalidStock     = errors.New("stock must be a non-negative integer")
	ErrMalformedImport  = errors.New("import file is not valid csv")
	ErrExportProducts   = errors.New("failed to export products")
)
