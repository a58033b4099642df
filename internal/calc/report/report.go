// Package report renders the evaluation of a riser case as PDF and XLSX
// documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/calc/model"
	"Riserwt/internal/catalog"
)

// Labeler formats a wall thickness with its schedule name.
type Labeler interface {
	Label(od, wt float64) string
}

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	// ID identifies the document; a random UUID when empty.
	ID   string     `json:"id"`
	Date time.Time  `json:"date"`
	Item batch.Item `json:"item"`

	Labels Labeler `json:"-"`
}

func (in Input) withDefaults() Input {
	if in.Title == "" {
		in.Title = "Riser Wall Thickness Report"
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}
	if in.Labels == nil {
		in.Labels = catalog.Standard()
	}
	return in
}

// Files lists the documents written by WriteFiles.
type Files struct {
	ID   string
	PDF  string
	XLSX string
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9]+`)

// WriteFiles writes both documents into dir under a name derived from the
// case name and document ID.
func WriteFiles(dir string, in Input) (Files, error) {
	in = in.withDefaults()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, err
	}
	base := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(in.Item.Case.Name), "-"), "-")
	if base == "" {
		base = "case"
	}
	base = fmt.Sprintf("%s-%s", base, in.ID[:min(len(in.ID), 8)])

	out := Files{
		ID:   in.ID,
		PDF:  filepath.Join(dir, base+".pdf"),
		XLSX: filepath.Join(dir, base+".xlsx"),
	}
	if err := writeFile(out.PDF, func(f *os.File) error { return PDF(f, in) }); err != nil {
		return Files{}, err
	}
	if err := writeFile(out.XLSX, func(f *os.File) error { return XLSX(f, in) }); err != nil {
		return Files{}, err
	}
	return out, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func sfText(sf model.SafetyFactor) string {
	if sf.IsFavorable() {
		return "favorable"
	}
	return sf.String()
}

// UtilizationText formats a utilisation, or "invalid" when the geometry
// could not be evaluated.
func UtilizationText(u float64, invalid bool) string {
	if invalid {
		return "invalid"
	}
	return fmt.Sprintf("%.3f", u)
}

func passText(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// summary is the key/value block shared by both documents.
func summary(in Input) [][2]string {
	it := in.Item
	p, l := it.Case.Pipe.WithDefaults(), it.Case.Load.WithDefaults()
	rows := [][2]string{
		{"Case", it.Case.Name},
		{"Outside diameter", fmt.Sprintf("%.3f in", p.OuterDiameterIn)},
		{"Nominal wall thickness", in.Labels.Label(p.OuterDiameterIn, p.NominalWTIn)},
		{"Grade", fmt.Sprintf("%s (SMYS %.0f psi, UTS %.0f psi)", p.Grade, p.SMYSPsi, p.UTSPsi)},
		{"Manufacturing / category", fmt.Sprintf("%s / %s", p.Manufacturing, p.Category)},
		{"Fluid", fmt.Sprintf("%s, SG %.2f", p.Fluid, p.FluidSG)},
		{"Mill tolerance", fmt.Sprintf("%.1f %%", p.MillTolerance*100)},
		{"Corrosion allowance", fmt.Sprintf("%.3f in", p.CorrosionAllowance())},
		{"Design / shut-in pressure", fmt.Sprintf("%.1f / %.1f psi", l.DesignPressurePsi, l.ShutInPressurePsi)},
		{"Shut-in location", string(l.Wellhead)},
		{"Water depth / riser length", fmt.Sprintf("%.1f / %.1f m", l.WaterDepthM, l.RiserLengthM)},
	}
	if it.Err != "" {
		return append(rows, [2]string{"Error", it.Err})
	}
	if run := it.Nominal; run != nil {
		rows = append(rows,
			[2]string{"MOP", fmt.Sprintf("%.1f psi", run.MOP)},
			[2]string{"Nominal result", passText(run.AllPass)},
			[2]string{"Max utilisation", UtilizationText(run.MaxUtilization(), run.Invalid())},
		)
		if cell, res, ok := run.Governing(); ok {
			rows = append(rows, [2]string{"Governing", fmt.Sprintf("%s, %s, SF %s", res.Check, cell.Label(), sfText(res.SafetyFactor))})
		}
		if it.Propagation.RequiredWTIn > 0 {
			rows = append(rows, [2]string{"Min. WT for propagation", fmt.Sprintf("%.3f in effective", it.Propagation.RequiredWTIn)})
		}
	}
	s := it.Search
	if s.NoCandidates {
		return append(rows, [2]string{"Standard thicknesses", "none catalogued for this OD"})
	}
	label := func(i int) string {
		if i < 0 || i >= len(s.Candidates) {
			return "none"
		}
		return in.Labels.Label(p.OuterDiameterIn, s.Candidates[i].WT)
	}
	rec := label(s.Recommended)
	if s.RecommendedFallback {
		rec += " (least passing)"
	}
	return append(rows,
		[2]string{"Least passing", label(s.LeastPassing)},
		[2]string{"Recommended", rec},
		[2]string{fmt.Sprintf("Closest passing >= %.3f in", s.TargetWT), label(s.ClosestAbove)},
	)
}
