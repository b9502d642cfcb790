package mocks

import (
	"context"

	"github.com/prabhashc/shopbill/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateBill(ctx context.Context, bill *model.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]model.Bill, error) {
	args := m.Called(ctx, limit)
	var bills []model.Bill
	if args.Get(0) != nil {
		bills = args.Get(0).([]model.Bill)
	}
	return bills, args.Error(1)
}
