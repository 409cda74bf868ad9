// Package rendering produces the printable PDF for a material list.
package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ghuser/solarbom/services/materials/domain/models"
)

// Table geometry: fixed proportions of the usable A4 width (190 mm at 10 mm
// side margins). Description gets the lion's share.
var columnWidths = [4]float64{32, 114, 22, 22}

var tableHeader = [4]string{"CÓDIGO", "DESCRIÇÃO", "QTD", "UN"}

// namePlaceholder is rendered when a line item has no description.
const namePlaceholder = "(sem descrição)"

// RenderInput carries everything one render call needs. The renderer is
// stateless: one call, one document, no interaction with previous documents.
type RenderInput struct {
	ListID     int64
	Client     string
	Technician string
	Items      []models.LineItem

	CompanyName string
	// LogoPath is optional; a missing or unreadable file skips the logo
	// block silently.
	LogoPath string
}

// DocumentRenderer writes material-list PDFs into a documents directory.
type DocumentRenderer struct {
	dir string
	now func() time.Time
}

// NewDocumentRenderer creates the documents directory if needed and returns
// a renderer writing into it.
func NewDocumentRenderer(dir string) (*DocumentRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("rendering: create documents dir: %w", err)
	}
	return &DocumentRenderer{dir: dir, now: time.Now}, nil
}

// Render writes a single paginated PDF and returns its absolute path.
//
// The filename is derived from the record ID plus a nanosecond generation
// timestamp, so repeated renders of the same record never overwrite each
// other.
//
// Layout, top to bottom: optional logo (40×20 mm), company name title,
// client/technician/issue-date block, the materials table (one row per item,
// in the order received), and a fixed two-signature block.
func (r *DocumentRenderer) Render(ctx context.Context, in RenderInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	generated := r.now()
	filename := fmt.Sprintf("lista_%d_%s.pdf", in.ListID,
		generated.Format("2006-01-02_150405.000000000"))
	path := filepath.Join(r.dir, filename)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	r.header(pdf, in, generated)
	r.table(pdf, in.Items)
	r.signatureBlock(pdf)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("rendering: write %s: %w", filename, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		// The file is on disk; fall back to the relative path.
		return path, nil
	}
	return abs, nil
}

func (r *DocumentRenderer) header(pdf *fpdf.Fpdf, in RenderInput, generated time.Time) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if in.LogoPath != "" {
		if _, err := os.Stat(in.LogoPath); err == nil {
			pdf.ImageOptions(in.LogoPath, 10, pdf.GetY(), 40, 20, false,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.SetY(pdf.GetY() + 23)
		}
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(190, 9, tr(in.CompanyName), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	metaLine := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pdf.GetStringWidth(label)+1, 5, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, tr(value), "", 1, "L", false, 0, "")
	}
	metaLine("Cliente: ", in.Client)
	metaLine("Responsável técnico: ", in.Technician)
	metaLine("Data de emissão: ", generated.Local().Format("02/01/2006 15:04"))
	pdf.Ln(5)
}

func (r *DocumentRenderer) table(pdf *fpdf.Fpdf, items []models.LineItem) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header row: teal fill, white bold text.
	pdf.SetFillColor(0x00, 0x79, 0x6B)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(128, 128, 128)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range tableHeader {
		pdf.CellFormat(columnWidths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows: uniform light fill, description left-aligned, the rest
	// centered.
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = namePlaceholder
		}
		pdf.CellFormat(columnWidths[0], 7, tr(it.Code), "1", 0, "C", true, 0, "")
		pdf.CellFormat(columnWidths[1], 7, tr(name), "1", 0, "L", true, 0, "")
		pdf.CellFormat(columnWidths[2], 7, FormatQuantity(it.Qty), "1", 0, "C", true, 0, "")
		pdf.CellFormat(columnWidths[3], 7, tr(it.Unit), "1", 1, "C", true, 0, "")
	}
}

func (r *DocumentRenderer) signatureBlock(pdf *fpdf.Fpdf) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.Ln(20)
	y := pdf.GetY()
	pdf.SetFont("Helvetica", "", 9)

	sign := func(x float64, label string) {
		pdf.Line(x+5, y, x+85, y)
		pdf.SetXY(x, y+1)
		pdf.CellFormat(90, 5, tr(label), "", 2, "C", false, 0, "")
		pdf.SetX(x)
		pdf.CellFormat(90, 5, tr("Data: ____/____/______   Doc.: ______________"), "", 0, "C", false, 0, "")
	}
	sign(10, "Responsável pela entrega")
	sign(110, "Técnico responsável pela retirada")
}

// FormatQuantity renders a stored quantity for display:
//   - whole numbers print without decimals ("6")
//   - fractional numbers print with a decimal comma ("2,5")
//   - anything that cannot be coerced to a number prints as its raw textual
//     form — corrupt storage must degrade, never abort a render
func FormatQuantity(v any) string {
	var q float64
	switch n := v.(type) {
	case float64:
		q = n
	case float32:
		q = float64(n)
	case int:
		q = float64(n)
	case int64:
		q = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return n.String()
		}
		q = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return n
		}
		q = f
	default:
		return fmt.Sprint(v)
	}

	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Sprint(v)
	}
	s := strconv.FormatFloat(q, 'f', -1, 64)
	return strings.ReplaceAll(s, ".", ",")
}
