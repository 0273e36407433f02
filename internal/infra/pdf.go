package infra

// pdf.go: printable menu rendered with go-pdf/fpdf.
// One section per category with its available products (flat price) followed
// by its available desserts (price per slice and whole).

import (
	"fmt"
	"io"

	"cafeteria/internal/model"

	"github.com/go-pdf/fpdf"
)

// SeccionMenu is one category block of the printed menu.
type SeccionMenu struct {
	Categoria model.Categoria
	Productos []model.Producto
	Postres   []model.Postre
}

// GenerarMenuPDF writes an A4 menu to w. Empty sections are skipped.
func GenerarMenuPDF(w io.Writer, titulo string, secciones []SeccionMenu) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// Core fonts are cp1252; accents need translating from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(titulo), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colNombre := contentW * 0.70
	colPrecio := contentW * 0.30

	for _, sec := range secciones {
		if len(sec.Productos) == 0 && len(sec.Postres) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(contentW, 8, tr(sec.Categoria.Nombre), "B", 1, "L", false, 0, "")
		if sec.Categoria.Descripcion != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(contentW, 5, tr(sec.Categoria.Descripcion), "", 1, "L", false, 0, "")
		}
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 10)
		for _, p := range sec.Productos {
			pdf.CellFormat(colNombre, 6, tr(p.Nombre), "", 0, "L", false, 0, "")
			pdf.CellFormat(colPrecio, 6, "$"+p.Precio.StringFixed(2), "", 1, "R", false, 0, "")
		}
		for _, p := range sec.Postres {
			pdf.CellFormat(colNombre, 6, tr(p.Nombre), "", 0, "L", false, 0, "")
			pdf.CellFormat(colPrecio, 6, "$"+p.PrecioTotal.StringFixed(2), "", 1, "R", false, 0, "")
			pdf.SetFont("Helvetica", "", 8)
			detalle := fmt.Sprintf("%d rebanadas, $%s c/u", p.Rebanadas, p.PrecioRebanada.StringFixed(2))
			pdf.CellFormat(contentW, 4, tr(detalle), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: write menu: %w", err)
	}
	return nil
}
