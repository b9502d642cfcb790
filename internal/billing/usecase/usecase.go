package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/prabhashc/shopbill/internal/billing"
	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/model"
	"go.uber.org/zap"
)

type billingUseCase struct {
	products    catalog.Repository
	bills       billing.Repository
	recentLimit int
	logger      *zap.Logger
}

func NewBillingUseCase(products catalog.Repository, bills billing.Repository, recentLimit int, log *zap.Logger) billing.UseCase {
	return &billingUseCase{
		products:    products,
		bills:       bills,
		recentLimit: recentLimit,
		logger:      log,
	}
}

func (uc *billingUseCase) NewDraft() *model.BillDraft {
	draft := model.NewBillDraft()
	uc.logger.Debug("billing session started", zap.String("draft_id", draft.ID))
	return draft
}

func (uc *billingUseCase) AddItem(ctx context.Context, draft *model.BillDraft, sku string, qty int) (*model.BillItem, error) {
	p, err := uc.products.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, sku)
	}

	available := p.Stock - draft.PendingQty(sku)
	if qty <= 0 || qty > available {
		return nil, fmt.Errorf("%w: %d of %s (%d available)", billing.ErrInvalidQuantity, qty, sku, available)
	}

	line := model.BillItem{SKU: p.SKU, Name: p.Name, Qty: qty, Price: p.Price}
	draft.Lines = append(draft.Lines, line)

	uc.logger.Debug("line accepted",
		zap.String("draft_id", draft.ID),
		zap.String("sku", line.SKU),
		zap.Int("qty", line.Qty),
		zap.Float64("price", line.Price))
	return &line, nil
}

func (uc *billingUseCase) Checkout(ctx context.Context, draft *model.BillDraft) (*model.Bill, error) {
	if len(draft.Lines) == 0 {
		return nil, billing.ErrEmptyBill
	}

	bill := &model.Bill{
		Date:  time.Now(),
		Total: draft.Total(),
		Items: append([]model.BillItem(nil), draft.Lines...),
	}

	if err := uc.bills.CreateBill(ctx, bill); err != nil {
		return nil, err
	}

	uc.logger.Info("bill committed",
		zap.String("draft_id", draft.ID),
		zap.Int64("bill_id", bill.ID),
		zap.Int("lines", len(bill.Items)),
		zap.Float64("total", bill.Total))
	return bill, nil
}

func (uc *billingUseCase) ListRecent(ctx context.Context) ([]model.Bill, error) {
	return uc.bills.ListRecent(ctx, uc.recentLimit)
}
