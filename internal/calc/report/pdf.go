package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// PDF writes the case report: inputs and selections, the life-cycle cells
// of the nominal thickness, the candidate table and verification notes.
func PDF(w io.Writer, in Input) error {
	in = in.withDefaults()
	it := in.Item

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, false)
	pdf.SetAuthor(in.Author, false)
	pdf.SetSubject(in.ID, false)
	pdf.SetCreationDate(in.Date)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Document %s - page %d/{nb}", in.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	for _, kv := range summary(in) {
		pdf.CellFormat(65, 6, kv[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, kv[1], "", 1, "L", false, 0, "")
	}

	if run := it.Nominal; run != nil {
		heading(pdf, fmt.Sprintf("Life-cycle conditions at %.3f in nominal", run.NominalWT))
		widths := []float64{26, 18, 42, 20, 34, 22, 20}
		tableRow(pdf, widths, true, "Stage", "Position", "Wall thickness", "WT eff.", "Limiting", "SF", "Result")
		for _, c := range run.Cells {
			tableRow(pdf, widths, false,
				c.Stage.String(), c.Position.String(), c.Variant.String(),
				fmt.Sprintf("%.4f", c.EffectiveWT), c.Limiting.String(), sfText(c.LimitingSF), passText(c.Pass))
		}
	}

	if s := it.Search; len(s.Candidates) > 0 {
		heading(pdf, "Standard wall thicknesses")
		widths := []float64{60, 25, 30, 67}
		tableRow(pdf, widths, true, "Wall thickness", "Result", "Max util.", "Selection")
		for i, c := range s.Candidates {
			tableRow(pdf, widths, false,
				in.Labels.Label(it.Case.Pipe.OuterDiameterIn, c.WT),
				passText(c.AllPass),
				UtilizationText(c.MaxUtilization, c.Invalid),
				selection(s.LeastPassing, s.Recommended, s.ClosestAbove, i))
		}
	}

	if len(it.Notes) > 0 {
		heading(pdf, "Verification notes")
		pdf.SetFont("Helvetica", "", 10)
		for _, n := range it.Notes {
			pdf.MultiCell(0, 5, "- "+n, "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, header bool, cols ...string) {
	if header {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(220, 228, 240)
	} else {
		pdf.SetFont("Helvetica", "", 9)
	}
	for i, txt := range cols {
		pdf.CellFormat(widths[i], 6, txt, "1", 0, "L", header, 0, "")
	}
	pdf.Ln(-1)
}

func selection(least, rec, closest, i int) string {
	var s string
	add := func(ok bool, label string) {
		if !ok {
			return
		}
		if s != "" {
			s += ", "
		}
		s += label
	}
	add(i == least, "least passing")
	add(i == rec, "recommended")
	add(i == closest, "closest")
	return s
}
