package catalog

import "errors"

var (
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidAdjustment = errors.New("stock cannot go negative")
	ErrInvalidProduct    = errors.New("invalid product")
)
