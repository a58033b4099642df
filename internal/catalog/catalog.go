// Package catalog holds the ASME B36.10 standard wall thicknesses used by
// the thickness search.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed b36_10.yaml
var standardData []byte

// CustomSchedule is reported for a thickness that matches no schedule.
const CustomSchedule = "Custom"

var (
	// ODTolerance accepts the rounded diameters found on data sheets,
	// e.g. 8.63 for 8.625.
	ODTolerance = decimal.RequireFromString("0.005")
	// WTTolerance is the schedule-name matching tolerance.
	WTTolerance = decimal.RequireFromString("0.001")
)

type Schedule struct {
	Name string  `yaml:"name"`
	WT   float64 `yaml:"wt"`
}

type Size struct {
	OD        float64    `yaml:"od"`
	Schedules []Schedule `yaml:"schedules"`
}

// Catalogue maps outside diameters to their schedules. It is immutable
// once built and safe for concurrent use.
type Catalogue struct {
	sizes []Size
}

var (
	standardOnce sync.Once
	standard     *Catalogue
)

// Standard returns the embedded B36.10 catalogue.
func Standard() *Catalogue {
	standardOnce.Do(func() {
		c, err := Parse(bytes.NewReader(standardData))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data: %v", err))
		}
		standard = c
	})
	return standard
}

// Parse reads a catalogue in the embedded YAML layout.
func Parse(r io.Reader) (*Catalogue, error) {
	var doc struct {
		Sizes []Size `yaml:"sizes"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	for _, s := range doc.Sizes {
		if s.OD <= 0 {
			return nil, fmt.Errorf("catalogue size with non-positive od %g", s.OD)
		}
		for _, sc := range s.Schedules {
			if sc.WT <= 0 || 2*sc.WT >= s.OD {
				return nil, fmt.Errorf("od %g schedule %s: wall thickness %g out of range", s.OD, sc.Name, sc.WT)
			}
		}
	}
	sort.SliceStable(doc.Sizes, func(i, j int) bool { return doc.Sizes[i].OD < doc.Sizes[j].OD })
	return &Catalogue{sizes: doc.Sizes}, nil
}

// With returns a copy of the catalogue with an extra size of unnamed
// thicknesses. An existing size with a matching diameter is replaced.
func (c *Catalogue) With(od float64, wts ...float64) *Catalogue {
	s := Size{OD: od}
	for _, wt := range wts {
		s.Schedules = append(s.Schedules, Schedule{Name: CustomSchedule, WT: wt})
	}
	out := &Catalogue{}
	for _, existing := range c.sizes {
		if !within(existing.OD, od, ODTolerance) {
			out.sizes = append(out.sizes, existing)
		}
	}
	out.sizes = append(out.sizes, s)
	sort.SliceStable(out.sizes, func(i, j int) bool { return out.sizes[i].OD < out.sizes[j].OD })
	return out
}

// Sizes lists the catalogued outside diameters in ascending order.
func (c *Catalogue) Sizes() []float64 {
	out := make([]float64, 0, len(c.sizes))
	for _, s := range c.sizes {
		out = append(out, s.OD)
	}
	return out
}

// Lookup returns the distinct standard thicknesses for od in ascending
// order, or nil when od is not catalogued.
func (c *Catalogue) Lookup(od float64) []float64 {
	s, ok := c.size(od)
	if !ok {
		return nil
	}
	seen := make(map[float64]bool, len(s.Schedules))
	var out []float64
	for _, sc := range s.Schedules {
		if !seen[sc.WT] {
			seen[sc.WT] = true
			out = append(out, sc.WT)
		}
	}
	sort.Float64s(out)
	return out
}

// ScheduleName joins the schedules matching wt with "/", in table order.
// It returns CustomSchedule when none match.
func (c *Catalogue) ScheduleName(od, wt float64) string {
	s, ok := c.size(od)
	if !ok {
		return CustomSchedule
	}
	var names []string
	for _, sc := range s.Schedules {
		if within(sc.WT, wt, WTTolerance) && sc.Name != CustomSchedule {
			names = append(names, sc.Name)
		}
	}
	if len(names) == 0 {
		return CustomSchedule
	}
	return strings.Join(names, "/")
}

// Label formats a thickness with its schedule, e.g. `0.500" (Sch 40/80S/XS)`.
func (c *Catalogue) Label(od, wt float64) string {
	name := c.ScheduleName(od, wt)
	if name == CustomSchedule {
		return fmt.Sprintf(`%.3f"`, wt)
	}
	return fmt.Sprintf(`%.3f" (Sch %s)`, wt, name)
}

// size finds the closest catalogued diameter within ODTolerance.
func (c *Catalogue) size(od float64) (Size, bool) {
	var (
		best     Size
		bestDiff decimal.Decimal
		found    bool
	)
	target := decimal.NewFromFloat(od)
	for _, s := range c.sizes {
		diff := decimal.NewFromFloat(s.OD).Sub(target).Abs()
		if diff.GreaterThan(ODTolerance) {
			continue
		}
		if !found || diff.LessThan(bestDiff) {
			best, bestDiff, found = s, diff, true
		}
	}
	return best, found
}

func within(a, b float64, tol decimal.Decimal) bool {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs().LessThanOrEqual(tol)
}
