package billing

import (
	"context"

	"github.com/prabhashc/shopbill/internal/model"
)

type Repository interface {
	// CreateBill decrements stock for every line and inserts the bill in
	// one transaction, assigning bill.ID from the store. A decrement that
	// would drive stock negative aborts the whole transaction with
	// ErrInsufficientStock.
	CreateBill(ctx context.Context, bill *model.Bill) error
	ListRecent(ctx context.Context, limit int) ([]model.Bill, error)
}
