package model

// Product is one catalog entry. SKU is the primary key and never
// changes; stock never goes below zero.
type Product struct {
	SKU   string  `db:"sku" json:"sku"`
	Name  string  `db:"name" json:"name"`
	Price float64 `db:"price" json:"price"`
	Stock int     `db:"stock" json:"stock"`
}
