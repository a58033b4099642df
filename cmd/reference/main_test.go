package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/casefile"
)

func TestPrintCase(t *testing.T) {
	res, err := batch.Evaluate(context.Background(), casefile.References()[2:], batch.Options{})
	require.NoError(t, err)
	it := res.Items[0]
	require.NotNil(t, it.Nominal)

	var buf bytes.Buffer
	require.NoError(t, printCase(&buf, it))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "== Multiphase Riser (MOP) ==\n"))
	assert.Contains(t, out, "OD 16.000 in, WT 0.750 in, X-52, MOP 471.")
	assert.Contains(t, out, "VON MISES")
	assert.Contains(t, out, "least passing ")
	assert.Contains(t, out, ", recommended ")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	rows := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "Installation") || strings.HasPrefix(l, "Hydrotest") || strings.HasPrefix(l, "Operation") {
			rows++
		}
	}
	assert.Equal(t, len(it.Nominal.Cells), rows)
}

func TestPrintCaseError(t *testing.T) {
	var buf bytes.Buffer
	it := batch.Item{Case: casefile.Case{Name: "Broken"}, Err: "invalid pipe: grade"}
	require.NoError(t, printCase(&buf, it))
	assert.Equal(t, "== Broken ==\nerror: invalid pipe: grade\n\n", buf.String())
}

func TestPrintCaseNoCandidates(t *testing.T) {
	c := casefile.References()[2]
	c.Pipe.OuterDiameterIn = 17.3
	res, err := batch.Evaluate(context.Background(), []casefile.Case{c}, batch.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printCase(&buf, res.Items[0]))
	assert.Contains(t, buf.String(), "no standard thicknesses for this OD")
}
