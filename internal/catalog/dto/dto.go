package dto

import "github.com/prabhashc/shopbill/internal/model"

// ProductListing is one row of the catalog listing with its low-stock
// flag resolved against the configured threshold.
type ProductListing struct {
	model.Product
	LowStock bool
}

// StockAdjustment reports a stock change, before and after, for user
// confirmation.
type StockAdjustment struct {
	SKU string
	Old int
	New int
}
