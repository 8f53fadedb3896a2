package levels

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-audio-levels/internal/testutil"
)

func TestTableFor_Shape(t *testing.T) {
	for _, std := range Standards() {
		t.Run(std.String(), func(t *testing.T) {
			table, err := TableFor(std)
			require.NoError(t, err)
			require.NoError(t, table.Validate())

			ndi := table.NDI()
			testutil.AssertLengthEquals(t, ndi, pointsPerTable)
			testutil.AssertLengthEquals(t, table.DBu(), len(ndi))
			testutil.AssertLengthEquals(t, table.DBVU(), len(ndi))
			testutil.AssertLengthEquals(t, table.DBFS(), len(ndi))
			assert.Len(t, table.Labels(), len(ndi))
			testutil.AssertStrictlyIncreasing(t, ndi)
		})
	}
}

func TestTableFor_Values(t *testing.T) {
	tests := []struct {
		std    Standard
		title  string
		ndi    []float64
		labels []string
		dbu    []float64
		dbvu   []float64
		dbfs   []float64
	}{
		{
			std:    SMPTE,
			title:  "SMPTE Audio Levels - Reference Level",
			ndi:    []float64{0.0, 0.063, 0.1, 0.63, 1.0, 10.0},
			labels: []string{"0.0", "0.063", "0.1", "0.63", "1.0", "10.0"},
			dbu:    []float64{-20, -16, 0, 4, 24},
			dbvu:   []float64{-24, -20, -4, 0, 20},
			dbfs:   []float64{-44, -40, -24, -20, 0},
		},
		{
			std:    EBU,
			title:  "EBU Audio Levels - Reference Level",
			ndi:    []float64{0.0, 0.063, 0.1, 0.63, 1.0, 5.01},
			labels: []string{"0.0", "0.063", "0.1", "0.63", "1.0", "5.01"},
			dbu:    []float64{-20, -16, 0, 4, 18},
			dbvu:   []float64{-24, -20, -4, 0, 14},
			dbfs:   []float64{-38, -34, -18, -14, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.std.String(), func(t *testing.T) {
			table, err := TableFor(tt.std)
			require.NoError(t, err)

			assert.Equal(t, tt.title, table.Title)
			assert.Equal(t, tt.ndi, table.NDI())
			assert.Equal(t, tt.labels, table.Labels())

			// The silence point is -inf on every scale and tagged as floor.
			assert.True(t, table.Points[0].IsFloor)
			assert.True(t, math.IsInf(table.DBu()[0], -1))
			assert.True(t, math.IsInf(table.DBVU()[0], -1))
			assert.True(t, math.IsInf(table.DBFS()[0], -1))

			assert.Equal(t, tt.dbu, table.DBu()[1:])
			assert.Equal(t, tt.dbvu, table.DBVU()[1:])
			assert.Equal(t, tt.dbfs, table.DBFS()[1:])
			for _, p := range table.Points[1:] {
				assert.False(t, p.IsFloor, "only the first point is a floor point")
			}
		})
	}
}

func TestTableFor_InvalidStandard(t *testing.T) {
	_, err := TableFor(Standard(7))
	require.ErrorIs(t, err, ErrInvalidStandard)
}

func TestTableFor_ReturnsCopy(t *testing.T) {
	first, err := TableFor(SMPTE)
	require.NoError(t, err)
	first.Points[1].NDI = 42
	first.Points[0].IsFloor = false

	second, err := TableFor(SMPTE)
	require.NoError(t, err)
	assert.InDelta(t, 0.063, second.Points[1].NDI, testutil.DefaultTolerance)
	assert.True(t, second.Points[0].IsFloor)
}

func TestTable_Validate(t *testing.T) {
	table, err := TableFor(EBU)
	require.NoError(t, err)

	short := table
	short.Points = table.Points[:5]
	require.ErrorIs(t, short.Validate(), ErrInvalidTable)

	unordered, err := TableFor(EBU)
	require.NoError(t, err)
	unordered.Points[2].NDI = unordered.Points[1].NDI
	err = unordered.Validate()
	require.ErrorIs(t, err, ErrInvalidTable)
	assert.Contains(t, err.Error(), "not increasing")
}

func TestTable_SeriesLinear(t *testing.T) {
	table, err := TableFor(SMPTE)
	require.NoError(t, err)

	s := table.Series(ScaleLinear)
	assert.Equal(t, table.NDI(), s.X, "linear axis keeps the raw levels")
	assert.Equal(t, table.Labels(), s.Labels)
	assert.Equal(t, table.Title, s.Title)
	assert.Equal(t, ScaleLinear, s.Scale)

	for _, col := range [][]float64{s.DBu, s.DBVU, s.DBFS} {
		assert.InDelta(t, FloorDB, col[0], testutil.DefaultTolerance)
		testutil.AssertNoNaNOrInf(t, col)
	}
	assert.Equal(t, []float64{FloorDB, -20, -16, 0, 4, 24}, s.DBu)
}

func TestTable_SeriesLogNeverZero(t *testing.T) {
	for _, std := range Standards() {
		t.Run(std.String(), func(t *testing.T) {
			table, err := TableFor(std)
			require.NoError(t, err)

			s := table.Series(ScaleLog)
			testutil.AssertPositive(t, s.X)
			testutil.AssertStrictlyIncreasing(t, s.X)
			assert.InDelta(t, LogAxisEpsilon, s.X[0], testutil.DefaultTolerance)
			assert.Equal(t, table.NDI()[1:], s.X[1:])

			// Labels keep the original text of the substituted point.
			assert.Equal(t, "0.0", s.Labels[0])

			// The table itself is untouched.
			assert.Zero(t, table.Points[0].NDI)
			assert.True(t, math.IsInf(table.Points[0].DBFS, -1))
		})
	}
}

func TestFormatDB(t *testing.T) {
	assert.Equal(t, "-60.0 dB", FormatDB(FloorDB))
	assert.Equal(t, "4.0 dB", FormatDB(4))
	assert.Equal(t, "-inf dB", FormatDB(math.Inf(-1)))
}

func TestFormatTable(t *testing.T) {
	table, err := TableFor(EBU)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatTable(&buf, table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+pointsPerTable)
	assert.Equal(t, table.Title, lines[0])
	assert.Contains(t, lines[1], "dBFS")
	assert.Contains(t, lines[2], "-inf dB")
	assert.Contains(t, lines[7], "5.01")
	assert.Contains(t, lines[7], "18.0 dB")
}
