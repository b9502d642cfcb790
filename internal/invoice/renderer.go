// Package invoice renders a finalized bill as a printable A4 PDF.
package invoice

import (
	"fmt"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/prabhashc/shopbill/config"
	"github.com/prabhashc/shopbill/internal/model"
	"github.com/prabhashc/shopbill/pkg/money"
	"go.uber.org/zap"
)

// Fixed page layout in millimetres. Rows advance by rowStep with no
// pagination: a bill long enough to run past the page overflows.
const (
	marginX   = 18.0
	titleY    = 25.0
	metaY     = 33.0
	metaStep  = 5.5
	headerY   = 50.0
	rowStep   = 6.5
	totalGap  = 8.0
	colItemX  = 18.0
	colQtyX   = 110.0
	colPriceX = 138.0
	colTotalX = 172.0
)

const dateLayout = "2006-01-02 15:04"

type Renderer struct {
	outDir    string
	nameWidth int
	logger    *zap.Logger
}

func NewRenderer(cfg *config.InvoiceConfig, log *zap.Logger) *Renderer {
	return &Renderer{
		outDir:    cfg.OutputDir,
		nameWidth: cfg.NameWidth,
		logger:    log,
	}
}

// Render writes invoice_<id>.pdf into the output directory and returns
// its path.
func (r *Renderer) Render(bill *model.Bill) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(marginX, titleY, "INVOICE")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginX, metaY, fmt.Sprintf("Bill #%d", bill.ID))
	pdf.Text(marginX, metaY+metaStep, "Date: "+bill.Date.Format(dateLayout))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colItemX, headerY, "Item")
	pdf.Text(colQtyX, headerY, "Qty")
	pdf.Text(colPriceX, headerY, "Price")
	pdf.Text(colTotalX, headerY, "Total")

	pdf.SetFont("Helvetica", "", 10)
	y := headerY + rowStep
	for _, item := range bill.Items {
		pdf.Text(colItemX, y, tr(truncate(item.Name, r.nameWidth)))
		pdf.Text(colQtyX, y, fmt.Sprintf("%d", item.Qty))
		pdf.Text(colPriceX, y, tr(money.Format(item.Price)))
		pdf.Text(colTotalX, y, tr(money.Format(item.Extension())))
		y += rowStep
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(colPriceX, y+totalGap, "TOTAL:")
	pdf.Text(colTotalX, y+totalGap, tr(money.Format(bill.Total)))

	path := filepath.Join(r.outDir, fmt.Sprintf("invoice_%d.pdf", bill.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}

	r.logger.Info("invoice written",
		zap.Int64("bill_id", bill.ID),
		zap.String("path", path))
	return path, nil
}

// truncate cuts a name at width runes; long names are cut, not wrapped.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
