package dto

type AddProductInput struct {
	SKU   string
	Name  string
	Price float64
	Stock int
}
