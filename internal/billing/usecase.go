package billing

import (
	"context"

	"github.com/prabhashc/shopbill/internal/model"
)

type UseCase interface {
	// NewDraft starts an empty bill. Nothing is persisted until Checkout.
	NewDraft() *model.BillDraft
	// AddItem validates sku and quantity against live stock (minus
	// quantities already pending on the draft) and appends a snapshot
	// line. The store is not touched.
	AddItem(ctx context.Context, draft *model.BillDraft, sku string, qty int) (*model.BillItem, error)
	// Checkout applies every stock decrement and the bill insert as one
	// transaction and returns the finalized bill.
	Checkout(ctx context.Context, draft *model.BillDraft) (*model.Bill, error)
	// ListRecent returns the newest bills, descending by id.
	ListRecent(ctx context.Context) ([]model.Bill, error)
}
