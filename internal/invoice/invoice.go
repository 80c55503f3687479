// Package invoice renders orders as PDF documents.
package invoice

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/abubasith456/React-white-label/internal/model"
)

// Renderer writes a document for o to w.
type Renderer interface {
	Render(w io.Writer, tenantID string, o *model.Order) error
	ContentType() string
}

// PDF renders A4 invoices.  Long orders flow onto further pages.
type PDF struct {
	// Location used to print the order date; UTC when nil.
	Location *time.Location
}

func NewPDF() *PDF { return &PDF{} }

func (PDF) ContentType() string { return "application/pdf" }

// Render lays out the invoice header, ship-to block, one line per item
// with its subtotal, and the grand total.
func (r PDF) Render(w io.Writer, tenantID string, o *model.Order) error {
	return r.layout(tenantID, o).Output(w)
}

func (r PDF) layout(tenantID string, o *model.Order) *fpdf.Fpdf {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetTitle(fmt.Sprintf("Invoice %s", o.ID), true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr("Invoice #"+o.ID), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(s string) { pdf.CellFormat(0, 6, tr(s), "", 1, "L", false, 0, "") }
	line("Date: " + o.CreatedAt.In(loc).Format("2006-01-02 15:04 MST"))
	line("Tenant: " + tenantID)
	line("Status: " + o.Status)

	if a := o.Address; a != nil {
		pdf.Ln(2)
		line("Ship To:")
		street := a.Line1
		if a.Line2 != "" {
			street += ", " + a.Line2
		}
		line(street)
		line(fmt.Sprintf("%s, %s %s", a.City, a.State, a.PostalCode))
		line(a.Country)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(110, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Subtotal", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, it := range o.Items {
		pdf.CellFormat(110, 7, tr(it.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("x%d", it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, Money(it.Subtotal()), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Total: "+Money(o.Total), "T", 1, "R", false, 0, "")

	return pdf
}

// Money formats an amount in dollars with two decimals.
func Money(v float64) string { return fmt.Sprintf("$%.2f", v) }
