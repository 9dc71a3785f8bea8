package infra

// recibo.go — thermal receipt-style PDF generation using go-pdf/fpdf.
// Renders an A7-size ticket with the comanda código, item table, an
// optional discount line and a bold total, returned as raw bytes so
// the HTTP layer can stream it directly.

import (
	"bytes"
	"fmt"

	"github.com/GodoyTECH/sistemapesqueiro/internal/model"

	"github.com/go-pdf/fpdf"
)

// GerarReciboPDF renders the receipt for a completed venda.
func GerarReciboPDF(venda *model.Venda) ([]byte, error) {
	// A7 ≈ 74mm × 105mm, close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Pesqueiro", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Venda", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Venda info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	comanda := ""
	if venda.Comanda != nil {
		comanda = venda.Comanda.Codigo
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Comanda %s", comanda), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venda.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venda.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		if len(nome) > 22 {
			nome = nome[:21] + "…"
		}
		pdf.CellFormat(col1, 5, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, formatCentavos(item.TotalCentavos), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	if venda.DescontoCentavos > 0 {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(col1+col2, 5, "Desconto:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "-"+formatCentavos(venda.DescontoCentavos), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, formatCentavos(venda.TotalCentavos), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Obrigado e boa pesca!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("recibo: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCentavos renders an integer centavos amount as "R$ 12,50".
func formatCentavos(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, v/100, v%100)
}
