package catalog

import (
	"context"

	"github.com/prabhashc/shopbill/internal/catalog/dto"
	"github.com/prabhashc/shopbill/internal/model"
)

type UseCase interface {
	AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, sku string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]dto.ProductListing, error)
	AdjustStock(ctx context.Context, sku string, delta int) (*dto.StockAdjustment, error)
	SeedDemo(ctx context.Context) error
}
