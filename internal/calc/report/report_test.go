package report

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/casefile"
)

func evaluated(t *testing.T) batch.Item {
	t.Helper()
	res, err := batch.Evaluate(context.Background(), casefile.References()[2:], batch.Options{})
	require.NoError(t, err)
	return res.Items[0]
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, Input{Project: "Field A", Author: "QA", Item: evaluated(t)})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestXLSX(t *testing.T) {
	item := evaluated(t)
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, Input{ID: "fixed-id", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), Item: item}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SummarySheet, CellsSheet, CandidatesSheet}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Document", "fixed-id"}, rows[0])
	assert.Equal(t, []string{"Date", "2026-01-02"}, rows[4])

	cells, err := f.GetRows(CellsSheet)
	require.NoError(t, err)
	assert.Len(t, cells, 1+16*6)

	cands, err := f.GetRows(CandidatesSheet)
	require.NoError(t, err)
	assert.Len(t, cands, 1+len(item.Search.Candidates))
}

type table map[float64][]float64

func (t table) Lookup(od float64) []float64 { return t[od] }

func TestXLSXBendingAndInvalidCandidates(t *testing.T) {
	c := casefile.References()[2]
	c.Load.BendingStrain = 0.0005
	res, err := batch.Evaluate(context.Background(), []casefile.Case{c}, batch.Options{
		Catalogue: table{16: {1.218, 8.0}},
	})
	require.NoError(t, err)
	item := res.Items[0]

	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, Input{ID: "fixed-id", Item: item}))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows(CellsSheet)
	require.NoError(t, err)
	assert.Len(t, cells, 1+16*7)
	assert.Equal(t, "von Mises (psi)", cells[0][7])
	assert.Equal(t, "Bending and Pressure", cells[7][8])

	cands, err := f.GetRows(CandidatesSheet)
	require.NoError(t, err)
	require.Len(t, cands, 3)
	assert.Equal(t, "PASS", cands[1][2])
	assert.NotEqual(t, "invalid", cands[1][3])
	assert.Equal(t, []string{"8", "FAIL", "invalid"}, []string{cands[2][0], cands[2][2], cands[2][3]})
}

func TestUtilizationText(t *testing.T) {
	assert.Equal(t, "0.286", UtilizationText(0.2857, false))
	assert.Equal(t, "invalid", UtilizationText(0.2857, true))
}

func TestSummary(t *testing.T) {
	in := Input{Item: evaluated(t)}.withDefaults()
	got := map[string]string{}
	for _, kv := range summary(in) {
		got[kv[0]] = kv[1]
	}
	assert.Equal(t, `0.750"`, got["Nominal wall thickness"])
	assert.Contains(t, got, "Least passing")
	assert.Contains(t, got, "MOP")
	assert.NotEqual(t, "none", got["Least passing"])

	t.Run("failed case", func(t *testing.T) {
		in := Input{Item: batch.Item{Case: casefile.References()[0], Err: "invalid pipe"}}.withDefaults()
		rows := summary(in)
		assert.Equal(t, [2]string{"Error", "invalid pipe"}, rows[len(rows)-1])
	})
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteFiles(dir, Input{Item: evaluated(t)})
	require.NoError(t, err)

	_, err = uuid.Parse(files.ID)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(files.PDF, dir))
	assert.Contains(t, files.PDF, "multiphase-riser-mop-"+files.ID[:8])

	for _, p := range []string{files.PDF, files.XLSX} {
		st, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, st.Size())
	}
}

func TestSelection(t *testing.T) {
	assert.Equal(t, "least passing, recommended, closest", selection(2, 2, 2, 2))
	assert.Equal(t, "recommended", selection(1, 2, 3, 2))
	assert.Empty(t, selection(-1, -1, -1, 0))
}
