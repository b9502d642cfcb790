package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `INSERT INTO products (sku, name, price, stock) VALUES (:sku, :name, :price, :stock)`
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *SQLiteRepository) CreateAll(ctx context.Context, products []model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range products {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE sku = ?`, p.SKU); err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", catalog.ErrDuplicateSKU, p.SKU)
		}

		query := `INSERT INTO products (sku, name, price, stock) VALUES (:sku, :name, :price, :stock)`
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *SQLiteRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE sku = ? LIMIT 1`, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY name`)
	return products, err
}

func (r *SQLiteRepository) UpdateStock(ctx context.Context, sku string, stock int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE products SET stock = ? WHERE sku = ?`, stock, sku)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrProductNotFound, sku)
	}
	return nil
}

func (r *SQLiteRepository) IsSKUUnique(ctx context.Context, sku string) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE sku = ?`, sku)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
