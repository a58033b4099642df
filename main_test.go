package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/casefile"
)

func TestRunTemplateAndTable(t *testing.T) {
	dir := t.TempDir()
	cases := filepath.Join(dir, "cases.yaml")
	env := filepath.Join(dir, "none.env")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-env", env, "-template", cases}, &out))
	got, err := casefile.Load(cases)
	require.NoError(t, err)
	assert.Len(t, got, len(casefile.References()))

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-env", env, "-no-reports", cases}, &out))
	for _, c := range casefile.References() {
		assert.Contains(t, out.String(), c.Name)
	}
}

func TestRunJSONAndReports(t *testing.T) {
	dir := t.TempDir()
	cases := filepath.Join(dir, "cases.xlsx")
	env := filepath.Join(dir, "none.env")
	reports := filepath.Join(dir, "reports")
	require.NoError(t, writeCases(cases, casefile.References()[:1]))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-env", env, "-json", "-out", reports, cases}, &out))

	var res batch.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Gas Riser (ID 3)", res.Items[0].Case.Name)

	entries, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunErrors(t *testing.T) {
	env := filepath.Join(t.TempDir(), "none.env")
	t.Setenv("RISER_CASE_FILE", "")

	assert.Error(t, run(context.Background(), []string{"-env", env}, &bytes.Buffer{}))
	assert.Error(t, run(context.Background(), []string{"-env", env, "cases.json"}, &bytes.Buffer{}))
	assert.Error(t, run(context.Background(), []string{"-env", env, "-template", "cases.txt"}, &bytes.Buffer{}))
}
