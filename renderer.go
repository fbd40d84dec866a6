// Package routereport assembles a multi-section route risk report and
// sequences its tables vertically through an external drawing backend.
//
// The package computes what text and rows to emit and at which vertical
// offset; all actual page drawing, table layout, and artifact persistence
// belong to the Renderer collaborator (see pdfrender for the PDF-backed
// implementation).
package routereport

// Renderer is the drawing backend a report is generated against.
//
// Implementations own page geometry, fonts, table cell drawing, and page
// breaks. DrawTable reports the vertical position at which the table ended
// so the caller can place the next section below it; measured is false when
// the implementation cannot report a position (for instance for a
// degenerate table), in which case the caller falls back to a fixed offset.
type Renderer interface {
	SetTextSize(size float64)
	DrawText(text string, x, y float64)
	DrawTable(t TableSpec) (endY float64, measured bool)
	Save(filename string) error
}

// TableSpec describes one table for the renderer: where it starts and the
// already-formatted header and body cells.
type TableSpec struct {
	StartY float64
	Header []string
	Body   [][]string
}
