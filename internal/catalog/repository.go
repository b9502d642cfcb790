package catalog

import (
	"context"

	"github.com/prabhashc/shopbill/internal/model"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	// CreateAll inserts every product in one transaction; any SKU
	// collision fails the whole batch with ErrDuplicateSKU.
	CreateAll(ctx context.Context, products []model.Product) error
	// FindBySKU returns nil, nil when the SKU is absent.
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	// FindAll returns the catalog ordered by name.
	FindAll(ctx context.Context) ([]model.Product, error)
	UpdateStock(ctx context.Context, sku string, stock int) error
	IsSKUUnique(ctx context.Context, sku string) (bool, error)
}
