// Package importer reads riser cases from the first sheet of an xlsx
// workbook and writes workbooks in the same layout.
package importer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Riserwt/internal/calc/model"
	"Riserwt/internal/casefile"
)

// Columns is the sheet layout. The first nine are required.
var Columns = []string{
	"name", "od_in", "wt_in", "grade",
	"design_pressure_psi", "shut_in_pressure_psi", "water_depth_m",
	"fluid", "fluid_sg",
	"manufacturing", "design_category", "wellhead",
	"mill_tolerance", "corrosion_allowance_in", "design_life_yr",
	"riser_length_m", "ovality", "target_wt",
	"bending_strain", "installation_bending_strain",
}

const requiredColumns = 9

// RowError reports a row that could not be read. Row is 1-based as shown
// in a spreadsheet.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

type Result struct {
	Cases   []casefile.Case
	Skipped []RowError
}

func ReadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses every data row below the header. Bad rows are skipped and
// reported; an unreadable workbook or an empty sheet is an error.
func Read(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("invalid file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("empty sheet")
	}

	var out Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		c, err := parseCaseRow(row)
		if err != nil {
			out.Skipped = append(out.Skipped, RowError{Row: i + 1, Err: err})
			continue
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("Row %d", i+1)
		}
		out.Cases = append(out.Cases, c)
	}
	return out, nil
}

func parseCaseRow(row []string) (casefile.Case, error) {
	if len(row) < requiredColumns {
		return casefile.Case{}, fmt.Errorf("expected at least %d columns, got %d", requiredColumns, len(row))
	}
	var (
		c   = casefile.Case{Name: strings.TrimSpace(row[0])}
		err error
	)
	num := func(i int, dst *float64) {
		if err != nil || i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return
		}
		if *dst, err = toFloat(row[i]); err != nil {
			err = fmt.Errorf("%s: %w", Columns[i], err)
		}
	}
	for _, req := range []struct {
		col int
		dst *float64
	}{
		{1, &c.Pipe.OuterDiameterIn},
		{2, &c.Pipe.NominalWTIn},
		{4, &c.Load.DesignPressurePsi},
		{5, &c.Load.ShutInPressurePsi},
		{6, &c.Load.WaterDepthM},
		{8, &c.Pipe.FluidSG},
	} {
		if cell(row, req.col) == "" {
			return casefile.Case{}, fmt.Errorf("%s is required", Columns[req.col])
		}
		num(req.col, req.dst)
	}
	if err != nil {
		return casefile.Case{}, err
	}
	c.Pipe.Grade = strings.TrimSpace(row[3])
	if c.Pipe.Fluid, err = model.ParseFluidCategory(row[7]); err != nil {
		return casefile.Case{}, err
	}

	if s := cell(row, 9); s != "" {
		if c.Pipe.Manufacturing, err = model.ParseManufacturing(s); err != nil {
			return casefile.Case{}, err
		}
	}
	if s := cell(row, 10); s != "" {
		if c.Pipe.Category, err = model.ParseDesignCategory(s); err != nil {
			return casefile.Case{}, err
		}
	}
	if s := cell(row, 11); s != "" {
		if c.Load.Wellhead, err = model.ParseWellhead(s); err != nil {
			return casefile.Case{}, err
		}
	}

	var corrosion float64
	num(12, &c.Pipe.MillTolerance)
	num(13, &corrosion)
	num(14, &c.Pipe.DesignLifeYr)
	num(15, &c.Load.RiserLengthM)
	num(16, &c.Pipe.Ovality)
	num(17, &c.TargetWT)
	num(18, &c.Load.BendingStrain)
	num(19, &c.Load.InstallationBendingStrain)
	if err != nil {
		return casefile.Case{}, err
	}
	if corrosion > 0 {
		if c.Pipe.DesignLifeYr <= 0 {
			c.Pipe.DesignLifeYr = model.DefaultDesignLife
		}
		c.Pipe.CorrosionRate = corrosion / c.Pipe.DesignLifeYr
	}
	return c, nil
}

// Write stores cases on a single sheet in the Columns layout. Defaults are
// applied first so the corrosion allowance survives a missing design life.
func Write(w io.Writer, cases []casefile.Case) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Cases"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	header := make([]interface{}, len(Columns))
	for i, name := range Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range cases {
		p, l := c.Pipe.WithDefaults(), c.Load.WithDefaults()
		row := []interface{}{
			c.Name, p.OuterDiameterIn, p.NominalWTIn, p.Grade,
			l.DesignPressurePsi, l.ShutInPressurePsi, l.WaterDepthM,
			string(p.Fluid), p.FluidSG,
			string(p.Manufacturing), string(p.Category), string(l.Wellhead),
			p.MillTolerance, p.CorrosionAllowance(), p.DesignLifeYr,
			l.RiserLengthM, p.Ovality, c.TargetWT,
			l.BendingStrain, l.InstallationBendingStrain,
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, s := range row {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
