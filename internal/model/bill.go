package model

import (
	"time"

	"github.com/google/uuid"
)

// BillItem is a snapshot of a product at the time of sale. Later price
// or name changes to the catalog do not touch persisted bills.
type BillItem struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Extension is the line amount, quantity times unit price.
func (it BillItem) Extension() float64 {
	return float64(it.Qty) * it.Price
}

// Bill is a finalized, immutable record of one sale. Total is computed
// once at checkout and never recomputed.
type Bill struct {
	ID    int64      `db:"id"`
	Date  time.Time  `db:"-"`
	Total float64    `db:"total"`
	Items []BillItem `db:"-"`
}

// BillDraft accumulates line items for one bill in progress. It lives in
// memory only; nothing is written to the store until checkout. ID is a
// session identifier used to correlate log entries.
type BillDraft struct {
	ID    string
	Lines []BillItem
}

func NewBillDraft() *BillDraft {
	return &BillDraft{ID: uuid.New().String()}
}

// PendingQty reports how many units of a SKU are already on the draft,
// so availability checks account for lines not yet committed.
func (d *BillDraft) PendingQty(sku string) int {
	total := 0
	for _, line := range d.Lines {
		if line.SKU == sku {
			total += line.Qty
		}
	}
	return total
}

// Total sums the line extensions.
func (d *BillDraft) Total() float64 {
	total := 0.0
	for _, line := range d.Lines {
		total += line.Extension()
	}
	return total
}
