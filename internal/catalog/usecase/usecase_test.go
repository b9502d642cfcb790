package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/catalog/dto"
	"github.com/prabhashc/shopbill/internal/catalog/mocks"
	"github.com/prabhashc/shopbill/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCatalogUseCase_AddProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("successful add", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("IsSKUUnique", ctx, "P010").Return(true, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
			return p.SKU == "P010" && p.Name == "Stapler" && p.Price == 120 && p.Stock == 8
		})).Return(nil).Once()

		p, err := uc.AddProduct(ctx, &dto.AddProductInput{SKU: "P010", Name: "Stapler", Price: 120, Stock: 8})
		assert.NoError(t, err)
		assert.Equal(t, "Stapler", p.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate sku leaves store untouched", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("IsSKUUnique", ctx, "P010").Return(false, nil).Once()

		p, err := uc.AddProduct(ctx, &dto.AddProductInput{SKU: "P010", Name: "Stapler", Price: 120, Stock: 8})
		assert.ErrorIs(t, err, catalog.ErrDuplicateSKU)
		assert.Nil(t, p)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid input is rejected before the store is consulted", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		tests := []dto.AddProductInput{
			{SKU: "", Name: "Stapler", Price: 120, Stock: 8},
			{SKU: "   ", Name: "Stapler", Price: 120, Stock: 8},
			{SKU: "P010", Name: "Stapler", Price: -1, Stock: 8},
			{SKU: "P010", Name: "Stapler", Price: 120, Stock: -1},
		}
		for _, input := range tests {
			_, err := uc.AddProduct(ctx, &input)
			assert.ErrorIs(t, err, catalog.ErrInvalidProduct)
		}
		mockRepo.AssertNotCalled(t, "IsSKUUnique", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogUseCase_ListProducts(t *testing.T) {
	ctx := context.TODO()
	mockRepo := new(mocks.MockRepository)
	uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

	mockRepo.On("FindAll", ctx).Return([]model.Product{
		{SKU: "P002", Name: "Pen", Price: 15, Stock: 4},
		{SKU: "P001", Name: "Notebook", Price: 50, Stock: 5},
	}, nil).Once()

	listings, err := uc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.True(t, listings[0].LowStock, "stock below threshold must be flagged")
	assert.False(t, listings[1].LowStock, "stock at threshold must not be flagged")
	mockRepo.AssertExpectations(t)
}

func TestCatalogUseCase_ListProducts_Empty(t *testing.T) {
	ctx := context.TODO()
	mockRepo := new(mocks.MockRepository)
	uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

	mockRepo.On("FindAll", ctx).Return([]model.Product{}, nil).Once()

	listings, err := uc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Empty(t, listings)
}

func TestCatalogUseCase_AdjustStock(t *testing.T) {
	ctx := context.TODO()

	t.Run("applies delta and reports old and new", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("FindBySKU", ctx, "P001").Return(&model.Product{SKU: "P001", Name: "Notebook", Stock: 30}, nil).Once()
		mockRepo.On("UpdateStock", ctx, "P001", 25).Return(nil).Once()

		adj, err := uc.AdjustStock(ctx, "P001", -5)
		assert.NoError(t, err)
		assert.Equal(t, 30, adj.Old)
		assert.Equal(t, 25, adj.New)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown sku", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("FindBySKU", ctx, "NOPE").Return(nil, nil).Once()

		_, err := uc.AdjustStock(ctx, "NOPE", 1)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("negative result leaves stock unchanged", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("FindBySKU", ctx, "P001").Return(&model.Product{SKU: "P001", Stock: 3}, nil).Once()

		_, err := uc.AdjustStock(ctx, "P001", -4)
		assert.ErrorIs(t, err, catalog.ErrInvalidAdjustment)
		mockRepo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delta landing exactly on zero is allowed", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("FindBySKU", ctx, "P001").Return(&model.Product{SKU: "P001", Stock: 3}, nil).Once()
		mockRepo.On("UpdateStock", ctx, "P001", 0).Return(nil).Once()

		adj, err := uc.AdjustStock(ctx, "P001", -3)
		assert.NoError(t, err)
		assert.Equal(t, 0, adj.New)
	})
}

func TestCatalogUseCase_SeedDemo(t *testing.T) {
	ctx := context.TODO()

	t.Run("inserts the demo batch", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("CreateAll", ctx, mock.MatchedBy(func(products []model.Product) bool {
			return len(products) == 3 && products[0].SKU == "P001" && products[2].SKU == "P003"
		})).Return(nil).Once()

		assert.NoError(t, uc.SeedDemo(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("collision fails the whole batch", func(t *testing.T) {
		mockRepo := new(mocks.MockRepository)
		uc := NewCatalogUseCase(mockRepo, 5, zap.NewNop())

		mockRepo.On("CreateAll", ctx, mock.Anything).Return(catalog.ErrDuplicateSKU).Once()

		err := uc.SeedDemo(ctx)
		assert.True(t, errors.Is(err, catalog.ErrDuplicateSKU))
	})
}
