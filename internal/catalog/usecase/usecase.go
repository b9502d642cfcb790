package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/catalog/dto"
	"github.com/prabhashc/shopbill/internal/model"
	"go.uber.org/zap"
)

// Products inserted by SeedDemo.
var demoProducts = []model.Product{
	{SKU: "P001", Name: "Notebook", Price: 50.0, Stock: 30},
	{SKU: "P002", Name: "Pen", Price: 15.0, Stock: 100},
	{SKU: "P003", Name: "Water Bottle", Price: 35.0, Stock: 50},
}

type catalogUseCase struct {
	repo              catalog.Repository
	lowStockThreshold int
	logger            *zap.Logger
}

func NewCatalogUseCase(repo catalog.Repository, lowStockThreshold int, log *zap.Logger) catalog.UseCase {
	return &catalogUseCase{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		logger:            log,
	}
}

func (uc *catalogUseCase) AddProduct(ctx context.Context, input *dto.AddProductInput) (*model.Product, error) {
	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		return nil, fmt.Errorf("%w: sku must not be empty", catalog.ErrInvalidProduct)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", catalog.ErrInvalidProduct)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must not be negative", catalog.ErrInvalidProduct)
	}

	unique, err := uc.repo.IsSKUUnique(ctx, sku)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("%w: %s", catalog.ErrDuplicateSKU, sku)
	}

	p := &model.Product{
		SKU:   sku,
		Name:  input.Name,
		Price: input.Price,
		Stock: input.Stock,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product added",
		zap.String("sku", p.SKU),
		zap.String("name", p.Name),
		zap.Float64("price", p.Price),
		zap.Int("stock", p.Stock))
	return p, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, sku string) (*model.Product, error) {
	p, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, sku)
	}
	return p, nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductListing, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]dto.ProductListing, 0, len(products))
	for _, p := range products {
		listings = append(listings, dto.ProductListing{
			Product:  p,
			LowStock: p.Stock < uc.lowStockThreshold,
		})
	}
	return listings, nil
}

func (uc *catalogUseCase) AdjustStock(ctx context.Context, sku string, delta int) (*dto.StockAdjustment, error) {
	p, err := uc.repo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, sku)
	}

	newStock := p.Stock + delta
	if newStock < 0 {
		return nil, fmt.Errorf("%w: %d%+d", catalog.ErrInvalidAdjustment, p.Stock, delta)
	}

	if err := uc.repo.UpdateStock(ctx, sku, newStock); err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.String("sku", sku),
		zap.Int("old", p.Stock),
		zap.Int("new", newStock))
	return &dto.StockAdjustment{SKU: sku, Old: p.Stock, New: newStock}, nil
}

func (uc *catalogUseCase) SeedDemo(ctx context.Context) error {
	if err := uc.repo.CreateAll(ctx, demoProducts); err != nil {
		return err
	}
	uc.logger.Info("demo data seeded", zap.Int("products", len(demoProducts)))
	return nil
}
