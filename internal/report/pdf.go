package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fstore/backoffice/internal/format"
	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []struct {
	header string
	width  float64
	value  func(CustomerRow) string
}{
	{"Customer ID", 25, func(r CustomerRow) string { return strconv.Itoa(r.CustomerID) }},
	{"Customer", 45, func(r CustomerRow) string { return r.CustomerName }},
	{"Sub total", 28, func(r CustomerRow) string { return format.Money(r.SubTotal, "$") }},
	{"Discount", 28, func(r CustomerRow) string { return format.Money(r.DiscountValue, "$") }},
	{"Revenue", 28, func(r CustomerRow) string { return format.Money(r.Revenue, "$") }},
	{"Return", 28, func(r CustomerRow) string { return format.Money(r.ReturnRevenue, "$") }},
	{"Net revenue", 28, func(r CustomerRow) string { return format.Money(r.NetRevenue, "$") }},
}

// WritePDF renders the customer report as a PDF document: title, the covered
// date range, then one table row per customer.
func WritePDF(w io.Writer, rows []CustomerRow, start, end time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "CUSTOMER REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	period := fmt.Sprintf("From %s to %s", format.Date(start), format.Date(end))
	pdf.CellFormat(0, 8, period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.value(row), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report: failed to render PDF: %w", err)
	}
	return nil
}
