package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"Riserwt/internal/calc/model"
)

const (
	SummarySheet    = "Summary"
	CellsSheet      = "Cells"
	CandidatesSheet = "Candidates"
)

// XLSX writes the report as a workbook with Summary, Cells and Candidates
// sheets. Cells holds one row per check of every life-cycle cell.
func XLSX(w io.Writer, in Input) error {
	in = in.withDefaults()
	it := in.Item

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sw := sheetWriter{f: f, sheet: SummarySheet}
	sw.row("Document", in.ID)
	sw.row("Title", in.Title)
	sw.row("Project", in.Project)
	sw.row("Author", in.Author)
	sw.row("Date", in.Date.Format("2006-01-02"))
	for _, kv := range summary(in) {
		sw.row(kv[0], kv[1])
	}
	for _, n := range it.Notes {
		sw.row("Note", n)
	}
	if sw.err == nil {
		sw.err = f.SetColWidth(SummarySheet, "A", "A", 30)
	}
	if sw.err == nil {
		sw.err = f.SetColWidth(SummarySheet, "B", "B", 70)
	}
	if sw.err != nil {
		return sw.err
	}

	if run := it.Nominal; run != nil {
		if _, err := f.NewSheet(CellsSheet); err != nil {
			return err
		}
		cw := sheetWriter{f: f, sheet: CellsSheet}
		cw.row("Stage", "Position", "Variant", "WT eff (in)", "Pi (psi)", "Po (psi)", "Top tension (lb)",
			"von Mises (psi)", "Check", "Demand", "Allowable", "SF", "Utilisation", "Result", "Notes")
		for _, c := range run.Cells {
			results := c.Results
			if c.Bending != nil {
				results = append(results[:len(results):len(results)], *c.Bending)
			}
			for _, r := range results {
				pi, ok := c.Pi[r.Check]
				if !ok {
					pi = r.Details["pi"]
				}
				cw.row(c.Stage.String(), c.Position.String(), c.Variant.String(), c.EffectiveWT,
					pi, c.Po, c.TopTension, c.Stress.VonMises,
					r.Check.String(), r.Demand, r.Allowable, sfText(r.SafetyFactor), utilization(r),
					passText(r.Pass), r.Notes)
			}
		}
		if cw.err == nil {
			cw.err = f.SetCellStyle(CellsSheet, "A1", "O1", bold)
		}
		if cw.err != nil {
			return cw.err
		}
	}

	if s := it.Search; len(s.Candidates) > 0 {
		if _, err := f.NewSheet(CandidatesSheet); err != nil {
			return err
		}
		kw := sheetWriter{f: f, sheet: CandidatesSheet}
		kw.row("WT (in)", "Schedule", "Result", "Max utilisation", "Selection")
		for i, c := range s.Candidates {
			var util interface{} = c.MaxUtilization
			if c.Invalid {
				util = UtilizationText(0, true)
			}
			kw.row(c.WT, in.Labels.Label(it.Case.Pipe.OuterDiameterIn, c.WT), passText(c.AllPass),
				util, selection(s.LeastPassing, s.Recommended, s.ClosestAbove, i))
		}
		if kw.err == nil {
			kw.err = f.SetCellStyle(CandidatesSheet, "A1", "E1", bold)
		}
		if kw.err != nil {
			return kw.err
		}
	}
	return f.Write(w)
}

// utilization is a numeric cell, or the text "invalid".
func utilization(r model.CheckResult) interface{} {
	if r.Invalid {
		return UtilizationText(0, true)
	}
	return r.Utilization
}

// sheetWriter appends rows and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	next  int
	err   error
}

func (s *sheetWriter) row(values ...interface{}) {
	if s.err != nil {
		return
	}
	s.next++
	addr, err := excelize.CoordinatesToCellName(1, s.next)
	if err != nil {
		s.err = err
		return
	}
	if err := s.f.SetSheetRow(s.sheet, addr, &values); err != nil {
		s.err = fmt.Errorf("%s row %d: %w", s.sheet, s.next, err)
	}
}
