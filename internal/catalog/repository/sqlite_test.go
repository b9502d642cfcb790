package repository

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/model"
	"github.com/prabhashc/shopbill/pkg/database"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.NewSQLite(&database.Config{
		Path: filepath.Join(t.TempDir(), "shop.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_CreateAndFind(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	p := &model.Product{SKU: "P001", Name: "Notebook", Price: 50, Stock: 30}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.FindBySKU(ctx, "P001")
	require.NoError(t, err)
	require.Equal(t, p, got)

	unique, err := repo.IsSKUUnique(ctx, "P001")
	require.NoError(t, err)
	require.False(t, unique)

	unique, err = repo.IsSKUUnique(ctx, "P002")
	require.NoError(t, err)
	require.True(t, unique)
}

func TestSQLiteRepository_FindBySKU_Absent(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.FindBySKU(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLiteRepository_FindAll_OrderedByName(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	gofakeit.Seed(11)
	names := []string{"Water Bottle", "Pen", "Notebook", "Eraser"}
	for i, name := range names {
		p := &model.Product{
			SKU:   gofakeit.LetterN(4) + gofakeit.DigitN(3),
			Name:  name,
			Price: gofakeit.Price(1, 500),
			Stock: gofakeit.Number(0, 100),
		}
		require.NoError(t, repo.Create(ctx, p), "product %d", i)
	}

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, len(names))

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i, p := range products {
		require.Equal(t, sorted[i], p.Name)
	}
}

func TestSQLiteRepository_FindAll_Empty(t *testing.T) {
	repo := newRepo(t)

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestSQLiteRepository_UpdateStock(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Product{SKU: "P001", Name: "Notebook", Price: 50, Stock: 30}))
	require.NoError(t, repo.UpdateStock(ctx, "P001", 12))

	got, err := repo.FindBySKU(ctx, "P001")
	require.NoError(t, err)
	require.Equal(t, 12, got.Stock)

	err = repo.UpdateStock(ctx, "NOPE", 1)
	require.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestSQLiteRepository_CreateAll(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	batch := []model.Product{
		{SKU: "P001", Name: "Notebook", Price: 50, Stock: 30},
		{SKU: "P002", Name: "Pen", Price: 15, Stock: 100},
		{SKU: "P003", Name: "Water Bottle", Price: 35, Stock: 50},
	}
	require.NoError(t, repo.CreateAll(ctx, batch))

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	// Second run collides on every SKU and must not insert anything.
	err = repo.CreateAll(ctx, batch)
	require.ErrorIs(t, err, catalog.ErrDuplicateSKU)

	products, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
}

func TestSQLiteRepository_CreateAll_PartialCollisionRollsBack(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Product{SKU: "P002", Name: "Pen", Price: 15, Stock: 100}))

	err := repo.CreateAll(ctx, []model.Product{
		{SKU: "P001", Name: "Notebook", Price: 50, Stock: 30},
		{SKU: "P002", Name: "Pen", Price: 15, Stock: 100},
	})
	require.ErrorIs(t, err, catalog.ErrDuplicateSKU)

	// P001 must not have been inserted by the failed batch.
	got, err := repo.FindBySKU(ctx, "P001")
	require.NoError(t, err)
	require.Nil(t, got)
}
