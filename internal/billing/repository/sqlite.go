package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prabhashc/shopbill/internal/billing"
	"github.com/prabhashc/shopbill/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

// billRow is the persisted shape: date as ISO-8601 text, items as JSON
// so product names may contain any character.
type billRow struct {
	ID    int64   `db:"id"`
	Date  string  `db:"date"`
	Total float64 `db:"total"`
	Items string  `db:"items"`
}

func (r *SQLiteRepository) CreateBill(ctx context.Context, bill *model.Bill) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The same SKU may appear on several lines; decrement once per SKU.
	decrements := map[string]int{}
	for _, item := range bill.Items {
		decrements[item.SKU] += item.Qty
	}

	for sku, qty := range decrements {
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET stock = stock - ? WHERE sku = ? AND stock >= ?`,
			qty, sku, qty)
		if err != nil {
			return err
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: %d of %s", billing.ErrInsufficientStock, qty, sku)
		}
	}

	items, err := json.Marshal(bill.Items)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bills (date, total, items) VALUES (?, ?, ?)`,
		bill.Date.Format(time.RFC3339), bill.Total, string(items))
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	bill.ID = id

	return tx.Commit()
}

func (r *SQLiteRepository) ListRecent(ctx context.Context, limit int) ([]model.Bill, error) {
	var rows []billRow
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT id, date, total, items FROM bills ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}

	bills := make([]model.Bill, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(time.RFC3339, row.Date)
		if err != nil {
			return nil, fmt.Errorf("bill %d: parse date: %w", row.ID, err)
		}

		var items []model.BillItem
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			return nil, fmt.Errorf("bill %d: decode items: %w", row.ID, err)
		}

		bills = append(bills, model.Bill{
			ID:    row.ID,
			Date:  date,
			Total: row.Total,
			Items: items,
		})
	}
	return bills, nil
}
