// Package pdfrender implements the report Renderer on top of gofpdf.
//
// It owns page geometry, fonts, table cell drawing, and page breaks; the
// assembler only hands it formatted rows and vertical offsets.
package pdfrender

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/routereport"
)

const (
	cellPad      = 1.5
	cellFontSize = 9
	minRowH      = 7.0
	bottomMargin = 15.0
)

// Doc renders report primitives onto a single PDF document. A Doc serves
// exactly one report: Save closes the underlying document.
type Doc struct {
	pdf    *gofpdf.Fpdf
	font   string
	outDir string
}

var _ routereport.Renderer = (*Doc)(nil)

// New creates a PDF document ready to render a report, portrait A4 in
// millimeters by default.
func New(opts ...Option) *Doc {
	cfg := docConfig{
		outDir:   ".",
		pageSize: "A4",
		font:     "Helvetica",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := gofpdf.New("P", "mm", cfg.pageSize, "")
	pdf.SetAutoPageBreak(false, bottomMargin)
	pdf.AddPage()
	pdf.SetFont(cfg.font, "", 11)

	return &Doc{pdf: pdf, font: cfg.font, outDir: cfg.outDir}
}

// SetTextSize changes the font size, in points, for subsequent DrawText
// calls.
func (d *Doc) SetTextSize(size float64) {
	d.pdf.SetFontSize(size)
}

// DrawText draws a single line of text with its baseline at (x, y).
func (d *Doc) DrawText(text string, x, y float64) {
	d.pdf.Text(x, y, text)
}

// DrawTable draws a full-width table starting at t.StartY and reports the
// vertical position just below its last row. A degenerate spec with neither
// header nor body draws nothing and reports no measurement.
func (d *Doc) DrawTable(t routereport.TableSpec) (float64, bool) {
	cols := len(t.Header)
	if cols == 0 && len(t.Body) > 0 {
		cols = len(t.Body[0])
	}
	if cols == 0 {
		return 0, false
	}

	pageW, _ := d.pdf.GetPageSize()
	lm, _, rm, _ := d.pdf.GetMargins()
	colW := (pageW - lm - rm) / float64(cols)

	d.pdf.SetY(t.StartY)
	d.drawHeader(t.Header, colW)

	_, pageH := d.pdf.GetPageSize()
	for i, row := range t.Body {
		rowH := d.rowHeight(row, colW)
		if d.pdf.GetY()+rowH > pageH-bottomMargin {
			d.pdf.AddPage()
			_, tm, _, _ := d.pdf.GetMargins()
			d.pdf.SetY(tm)
			d.drawHeader(t.Header, colW)
		}
		d.drawRow(row, colW, rowH, i%2 == 0)
	}

	return d.pdf.GetY(), true
}

// drawHeader draws the filled header row and leaves the cursor below it.
func (d *Doc) drawHeader(header []string, colW float64) {
	if len(header) == 0 {
		return
	}
	d.pdf.SetFont(d.font, "B", cellFontSize)
	d.pdf.SetFillColor(63, 81, 181)
	d.pdf.SetTextColor(255, 255, 255)

	lm, _, _, _ := d.pdf.GetMargins()
	y := d.pdf.GetY()
	rowH := d.rowHeight(header, colW)
	for i, cell := range header {
		x := lm + float64(i)*colW
		d.pdf.Rect(x, y, colW, rowH, "FD")
		d.pdf.SetXY(x+cellPad, y+cellPad)
		d.pdf.MultiCell(colW-2*cellPad, d.lineHeight(), cell, "", "L", false)
	}
	d.pdf.SetXY(lm, y+rowH)

	d.pdf.SetFont(d.font, "", cellFontSize)
	d.pdf.SetTextColor(0, 0, 0)
}

// drawRow draws one body row at the current cursor, alternating fills for
// readability, and leaves the cursor below it.
func (d *Doc) drawRow(cells []string, colW, rowH float64, alt bool) {
	if alt {
		d.pdf.SetFillColor(245, 245, 245)
	} else {
		d.pdf.SetFillColor(255, 255, 255)
	}

	lm, _, _, _ := d.pdf.GetMargins()
	y := d.pdf.GetY()
	for i, cell := range cells {
		x := lm + float64(i)*colW
		d.pdf.Rect(x, y, colW, rowH, "FD")
		d.pdf.SetXY(x+cellPad, y+cellPad)
		d.pdf.MultiCell(colW-2*cellPad, d.lineHeight(), cell, "", "L", false)
	}
	d.pdf.SetXY(lm, y+rowH)
}

// rowHeight computes the height needed for a row from its tallest wrapped
// cell.
func (d *Doc) rowHeight(cells []string, colW float64) float64 {
	maxH := minRowH
	for _, cell := range cells {
		lines := d.pdf.SplitLines([]byte(cell), colW-2*cellPad)
		h := float64(len(lines))*d.lineHeight() + 2*cellPad
		if h > maxH {
			maxH = h
		}
	}
	return maxH
}

func (d *Doc) lineHeight() float64 {
	_, unitSize := d.pdf.GetFontSize()
	return unitSize * 1.5
}

// Output writes the finished PDF to w. No drawing may follow.
func (d *Doc) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfrender: writing document: %w", err)
	}
	return nil
}

// Save writes the PDF into the configured output directory under filename
// and closes the document.
func (d *Doc) Save(filename string) error {
	path := filepath.Join(d.outDir, filename)
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdfrender: writing %s: %w", path, err)
	}
	return nil
}
