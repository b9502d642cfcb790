// Package cli drives the interactive menu. All user interaction lives
// here; the usecases stay free of terminal concerns.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prabhashc/shopbill/internal/billing"
	"github.com/prabhashc/shopbill/internal/catalog"
	"github.com/prabhashc/shopbill/internal/catalog/dto"
	"github.com/prabhashc/shopbill/internal/invoice"
	"github.com/prabhashc/shopbill/pkg/money"
	"go.uber.org/zap"
)

// sentinel ends line-item entry during bill creation.
const sentinel = "done"

const divider = "------------------------------------------------------------"

type Handler struct {
	catalog  catalog.UseCase
	billing  billing.UseCase
	invoices *invoice.Renderer
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
}

func NewHandler(catalogUC catalog.UseCase, billingUC billing.UseCase, invoices *invoice.Renderer, in io.Reader, out io.Writer, log *zap.Logger) *Handler {
	return &Handler{
		catalog:  catalogUC,
		billing:  billingUC,
		invoices: invoices,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   log,
	}
}

// Run loops over the menu until Exit or end of input. Domain-level
// rejections are printed and the loop continues; only store or invoice
// I/O failures are returned.
func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.out, "\n=== Smart Inventory System ===")

	for {
		fmt.Fprintln(h.out, "\n1. Add Product  2. List Products  3. Update Stock")
		fmt.Fprintln(h.out, "4. Create Bill  5. View Bills     6. Seed Demo")
		fmt.Fprintln(h.out, "0. Exit")

		choice, ok := h.prompt("\nChoice: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = h.addProduct(ctx)
		case "2":
			err = h.listProducts(ctx)
		case "3":
			err = h.updateStock(ctx)
		case "4":
			err = h.createBill(ctx)
		case "5":
			err = h.viewBills(ctx)
		case "6":
			err = h.seedDemo(ctx)
		case "0":
			fmt.Fprintln(h.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid choice")
		}
		if err != nil {
			return err
		}
	}
}

func (h *Handler) addProduct(ctx context.Context) error {
	sku, ok := h.prompt("SKU: ")
	if !ok {
		return nil
	}
	name, ok := h.prompt("Name: ")
	if !ok {
		return nil
	}
	price, ok := h.promptFloat("Price: ")
	if !ok {
		return nil
	}
	stock, ok := h.promptInt("Stock: ")
	if !ok {
		return nil
	}

	p, err := h.catalog.AddProduct(ctx, &dto.AddProductInput{
		SKU:   sku,
		Name:  name,
		Price: price,
		Stock: stock,
	})
	switch {
	case errors.Is(err, catalog.ErrDuplicateSKU):
		fmt.Fprintln(h.out, "✗ SKU exists")
	case errors.Is(err, catalog.ErrInvalidProduct):
		fmt.Fprintf(h.out, "✗ %v\n", err)
	case err != nil:
		return err
	default:
		fmt.Fprintf(h.out, "✓ Added %s\n", p.Name)
	}
	return nil
}

func (h *Handler) listProducts(ctx context.Context) error {
	listings, err := h.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(listings) == 0 {
		fmt.Fprintln(h.out, "No products")
		return nil
	}

	fmt.Fprintln(h.out, "\n"+divider)
	fmt.Fprintf(h.out, "%-10s %-25s %10s %8s\n", "SKU", "Name", "Price", "Stock")
	fmt.Fprintln(h.out, divider)
	for _, l := range listings {
		flag := ""
		if l.LowStock {
			flag = " ⚠"
		}
		fmt.Fprintf(h.out, "%-10s %-25s %10s %8d%s\n", l.SKU, l.Name, money.Format(l.Price), l.Stock, flag)
	}
	fmt.Fprintln(h.out, divider)
	return nil
}

func (h *Handler) updateStock(ctx context.Context) error {
	sku, ok := h.prompt("SKU: ")
	if !ok {
		return nil
	}
	delta, ok := h.promptInt("Change (+/-): ")
	if !ok {
		return nil
	}

	adj, err := h.catalog.AdjustStock(ctx, sku, delta)
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		fmt.Fprintln(h.out, "✗ Not found")
	case errors.Is(err, catalog.ErrInvalidAdjustment):
		fmt.Fprintln(h.out, "✗ Stock can't be negative")
	case err != nil:
		return err
	default:
		fmt.Fprintf(h.out, "✓ Stock updated: %d → %d\n", adj.Old, adj.New)
	}
	return nil
}

func (h *Handler) createBill(ctx context.Context) error {
	draft := h.billing.NewDraft()
	fmt.Fprintf(h.out, "\nAdd items (type '%s' to finish)\n", sentinel)

	for {
		sku, ok := h.prompt("SKU: ")
		if !ok {
			return nil
		}
		if strings.EqualFold(sku, sentinel) {
			break
		}

		p, err := h.catalog.GetProduct(ctx, sku)
		if errors.Is(err, catalog.ErrProductNotFound) {
			fmt.Fprintln(h.out, "✗ Not found")
			continue
		}
		if err != nil {
			return err
		}

		available := p.Stock - draft.PendingQty(sku)
		qty, ok := h.promptInt(fmt.Sprintf("Qty (max %d): ", available))
		if !ok {
			continue
		}

		line, err := h.billing.AddItem(ctx, draft, sku, qty)
		switch {
		case errors.Is(err, billing.ErrInvalidQuantity):
			fmt.Fprintln(h.out, "✗ Invalid quantity")
		case errors.Is(err, catalog.ErrProductNotFound):
			fmt.Fprintln(h.out, "✗ Not found")
		case err != nil:
			return err
		default:
			fmt.Fprintf(h.out, "✓ Added %dx %s\n", line.Qty, line.Name)
		}
	}

	bill, err := h.billing.Checkout(ctx, draft)
	if errors.Is(err, billing.ErrEmptyBill) {
		fmt.Fprintln(h.out, "No items")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "\n✓ Bill #%d | Total: %s\n", bill.ID, money.Format(bill.Total))

	path, err := h.invoices.Render(bill)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "✓ Invoice saved: %s\n", path)
	return nil
}

func (h *Handler) viewBills(ctx context.Context) error {
	bills, err := h.billing.ListRecent(ctx)
	if err != nil {
		return err
	}
	if len(bills) == 0 {
		fmt.Fprintln(h.out, "No bills")
		return nil
	}

	fmt.Fprintln(h.out, "\n"+divider)
	fmt.Fprintf(h.out, "%-8s %-25s %15s\n", "Bill", "Date", "Total")
	fmt.Fprintln(h.out, divider)
	for _, b := range bills {
		fmt.Fprintf(h.out, "%-8d %-25s %15s\n", b.ID, b.Date.Format("2006-01-02 15:04"), money.Format(b.Total))
	}
	fmt.Fprintln(h.out, divider)
	return nil
}

func (h *Handler) seedDemo(ctx context.Context) error {
	err := h.catalog.SeedDemo(ctx)
	switch {
	case errors.Is(err, catalog.ErrDuplicateSKU):
		fmt.Fprintln(h.out, "✗ Data already exists")
	case err != nil:
		return err
	default:
		fmt.Fprintln(h.out, "✓ Demo data loaded")
	}
	return nil
}

// prompt reads one trimmed line; ok is false at end of input.
func (h *Handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) promptInt(label string) (int, bool) {
	raw, ok := h.prompt(label)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(h.out, "✗ Invalid number")
		return 0, false
	}
	return v, true
}

func (h *Handler) promptFloat(label string) (float64, bool) {
	raw, ok := h.prompt(label)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(h.out, "✗ Invalid number")
		return 0, false
	}
	return v, true
}
