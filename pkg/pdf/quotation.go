package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/frozz/storefront/internal/config"
	"github.com/frozz/storefront/internal/models"
	"github.com/frozz/storefront/internal/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const ContentType = "application/pdf"

type Renderer struct {
	storeName string
	currency  string
	validity  time.Duration
}

func NewRenderer(cfg *config.Store) *Renderer {
	validity := cfg.QuotationValidity
	if validity <= 0 {
		validity = 24 * time.Hour
	}

	return &Renderer{storeName: cfg.Name, currency: cfg.Currency, validity: validity}
}

// Filename is COT{id}-{date}-{client slug}.pdf, the name staff see in Telegram.
func Filename(q *models.Quotation) string {
	name := q.ClientName
	if strings.TrimSpace(name) == "" {
		name = "sin-cliente"
	}

	slug := utils.Truncate(utils.Slugify(name), 40)
	if slug == "" {
		slug = "sin-cliente"
	}

	return fmt.Sprintf("COT%d-%s-%s.pdf", q.ID, q.CreatedAt.Format("2006-01-02"), slug)
}

// Render draws the quotation document. listPrices maps product id to the
// current list price so discounted lines can show what was saved; it may be nil.
func (r *Renderer) Render(q *models.Quotation, listPrices map[int64]decimal.Decimal) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle(tr(fmt.Sprintf("Cotización COT%d", q.ID)), false)
	doc.SetAuthor(tr(r.storeName), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, tr(fmt.Sprintf("%s - Cotización COT%d", r.storeName, q.ID)))
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, tr("Fecha: "+q.CreatedAt.Format("2006-01-02 15:04")))
	doc.Ln(5)
	doc.Cell(0, 6, tr("Válida hasta: "+q.ExpiresAt(r.validity).Format("2006-01-02 15:04")))
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Cliente")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 10)

	for _, line := range []string{
		"Tipo: " + models.ClientTypeLabel(q.Client()),
		"Nombre: " + orDash(q.ClientName),
		"Correo: " + orDash(q.ClientEmail),
		"Teléfono: " + orDash(q.ClientPhone),
		"Ubicación: " + orDash(q.ClientDepartamento) + " - " + orDash(q.ClientCity),
	} {
		doc.Cell(0, 5, tr(line))
		doc.Ln(5)
	}
	doc.Ln(4)

	headers := []struct {
		title string
		width float64
	}{
		{"Producto", 52}, {"Categoría", 28}, {"Cant.", 12}, {"Precio", 24}, {"Base", 24}, {"IVA", 20}, {"Subtotal", 30},
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 240, 250)
	for _, h := range headers {
		doc.CellFormat(h.width, 7, tr(h.title), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, item := range q.Items {
		unit := models.SplitTax(item.UnitPrice)

		doc.CellFormat(52, 6, tr(clip(item.ProductName, 32)), "1", 0, "L", false, 0, "")
		doc.CellFormat(28, 6, tr(clip(orDash(item.CategoryName), 16)), "1", 0, "L", false, 0, "")
		doc.CellFormat(12, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(24, 6, Money(item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(24, 6, Money(unit.Base), "1", 0, "R", false, 0, "")
		doc.CellFormat(20, 6, Money(unit.IVA), "1", 0, "R", false, 0, "")
		doc.CellFormat(30, 6, Money(item.Subtotal), "1", 0, "R", false, 0, "")
		doc.Ln(-1)

		if list, ok := listPrices[item.ProductID]; ok && list.GreaterThan(item.UnitPrice) {
			doc.SetFont("Helvetica", "I", 8)
			doc.CellFormat(0, 5, tr(fmt.Sprintf("  Precio normal %s, descuento %s por unidad", Money(list), Money(list.Sub(item.UnitPrice)))), "", 0, "L", false, 0, "")
			doc.Ln(-1)
			doc.SetFont("Helvetica", "", 9)
		}
	}
	doc.Ln(4)

	split := q.TaxSplit()

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(160, 6, "Base gravable", "", 0, "R", false, 0, "")
	doc.CellFormat(30, 6, Money(split.Base), "", 0, "R", false, 0, "")
	doc.Ln(-1)
	doc.CellFormat(160, 6, tr(fmt.Sprintf("IVA (%s%%)", models.IVARate.Mul(decimal.NewFromInt(100)).String())), "", 0, "R", false, 0, "")
	doc.CellFormat(30, 6, Money(split.IVA), "", 0, "R", false, 0, "")
	doc.Ln(-1)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(160, 7, "Total "+r.currency, "", 0, "R", false, 0, "")
	doc.CellFormat(30, 7, Money(split.Total), "", 0, "R", false, 0, "")
	doc.Ln(10)

	if q.Notes != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.Cell(0, 6, "Notas")
		doc.Ln(6)
		doc.SetFont("Helvetica", "", 9)
		doc.MultiCell(0, 5, tr(q.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering quotation %d: %w", q.ID, err)
	}

	return buf.Bytes(), nil
}

// Money formats a peso amount with dot thousands separators, e.g. $ 1.250.000.
func Money(d decimal.Decimal) string {
	raw := d.Round(0).StringFixed(0)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}

	var b strings.Builder
	for i, r := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "$ " + b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}

	return s
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
