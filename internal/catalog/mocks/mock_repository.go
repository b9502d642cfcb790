package mocks

import (
	"context"

	"github.com/prabhashc/shopbill/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) CreateAll(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	args := m.Called(ctx, sku)
	var p *model.Product
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Product)
	}
	return p, args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	var products []model.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]model.Product)
	}
	return products, args.Error(1)
}

func (m *MockRepository) UpdateStock(ctx context.Context, sku string, stock int) error {
	args := m.Called(ctx, sku, stock)
	return args.Error(0)
}

func (m *MockRepository) IsSKUUnique(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}
