package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	c := Standard()

	t.Run("ascending and unique", func(t *testing.T) {
		got := c.Lookup(16)
		assert.Equal(t, []float64{0.165, 0.188, 0.25, 0.312, 0.375, 0.5, 0.656, 0.843, 1.031, 1.218, 1.427, 1.593}, got)
	})

	t.Run("rounded diameter", func(t *testing.T) {
		assert.Equal(t, c.Lookup(8.625), c.Lookup(8.63))
		assert.Len(t, c.Lookup(8.63), 12)
	})

	t.Run("unknown diameter", func(t *testing.T) {
		assert.Nil(t, c.Lookup(17.3))
	})

	assert.Len(t, c.Sizes(), 34)
}

func TestScheduleName(t *testing.T) {
	c := Standard()
	assert.Equal(t, "40/80S/XS", c.ScheduleName(16, 0.5))
	assert.Equal(t, "30/40S/STD", c.ScheduleName(16, 0.3755))
	assert.Equal(t, CustomSchedule, c.ScheduleName(16, 0.6))
	assert.Equal(t, CustomSchedule, c.ScheduleName(17.3, 0.5))

	assert.Equal(t, `0.656" (Sch 60)`, c.Label(16, 0.656))
	assert.Equal(t, `0.600"`, c.Label(16, 0.6))
}

func TestWith(t *testing.T) {
	base := Standard()
	c := base.With(17.3, 0.75, 0.5, 0.5)

	assert.Equal(t, []float64{0.5, 0.75}, c.Lookup(17.3))
	assert.Equal(t, CustomSchedule, c.ScheduleName(17.3, 0.5))
	assert.Nil(t, base.Lookup(17.3))

	replaced := base.With(16, 0.9)
	assert.Equal(t, []float64{0.9}, replaced.Lookup(16))
	assert.Len(t, replaced.Sizes(), len(base.Sizes()))
}

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(`
sizes:
  - od: 6.625
    schedules:
      - {name: "40", wt: 0.28}
  - od: 4.5
    schedules:
      - {name: "40", wt: 0.237}
`))
	require.NoError(t, err)
	assert.Equal(t, []float64{4.5, 6.625}, c.Sizes())

	_, err = Parse(strings.NewReader("sizes:\n  - od: 2\n    schedules:\n      - {name: bad, wt: 1.5}\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("sizes: ["))
	assert.Error(t, err)
}
