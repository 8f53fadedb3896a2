package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"

	levels "github.com/tphakala/go-audio-levels"
	"github.com/tphakala/go-audio-levels/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, ".", r.dir)
	assert.Equal(t, DefaultFormat, r.format)
	assert.Greater(t, float64(r.width), float64(r.height))
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New(Options{Format: "bmp"})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_NegativeSize(t *testing.T) {
	_, err := New(Options{WidthInches: -1})
	require.Error(t, err)
}

func TestRenderer_FileName(t *testing.T) {
	r, err := New(Options{Format: ".SVG"})
	require.NoError(t, err)
	assert.Equal(t, "smpte_linear.svg", r.FileName(levels.SMPTE, levels.ScaleLinear))
	assert.Equal(t, "ebu_log.svg", r.FileName(levels.EBU, levels.ScaleLog))
}

func TestBuild_Ticks(t *testing.T) {
	for _, std := range levels.Standards() {
		for _, scale := range []levels.Scale{levels.ScaleLinear, levels.ScaleLog} {
			t.Run(std.String()+"_"+scale.String(), func(t *testing.T) {
				table, err := levels.TableFor(std)
				require.NoError(t, err)

				p, err := Build(table, scale)
				require.NoError(t, err)

				series := table.Series(scale)
				ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
				require.Len(t, ticks, len(series.X))
				for i, tick := range ticks {
					assert.InDelta(t, series.X[i], tick.Value, testutil.DefaultTolerance)
					assert.Equal(t, table.Points[i].Label, tick.Label)
				}

				assert.Equal(t, table.Title, p.Title.Text)
				assert.Equal(t, xAxisLabel, p.X.Label.Text)
				assert.Equal(t, yAxisLabel, p.Y.Label.Text)
			})
		}
	}
}

func TestBuild_LogAxis(t *testing.T) {
	table, err := levels.TableFor(levels.EBU)
	require.NoError(t, err)

	p, err := Build(table, levels.ScaleLog)
	require.NoError(t, err)

	assert.IsType(t, plot.LogScale{}, p.X.Scale)
	assert.Greater(t, p.X.Min, 0.0, "log axis must start above zero")
	assert.Less(t, p.X.Min, levels.LogAxisEpsilon)
	assert.Greater(t, p.X.Max, 5.01)
}

func TestBuild_LinearAxis(t *testing.T) {
	table, err := levels.TableFor(levels.SMPTE)
	require.NoError(t, err)

	p, err := Build(table, levels.ScaleLinear)
	require.NoError(t, err)

	assert.IsType(t, plot.LinearScale{}, p.X.Scale)
	assert.Less(t, p.X.Min, 0.0)
	assert.Greater(t, p.X.Max, 10.0)
	assert.Less(t, p.Y.Min, levels.FloorDB)
	assert.Greater(t, p.Y.Max, 24.0)
}

func TestAnnotations(t *testing.T) {
	table, err := levels.TableFor(levels.SMPTE)
	require.NoError(t, err)
	series := table.Series(levels.ScaleLinear)

	labels, err := annotations(toXYs(series.X, series.DBFS))
	require.NoError(t, err)
	assert.Equal(t, []string{"-60.0 dB", "-44.0 dB", "-40.0 dB", "-24.0 dB", "-20.0 dB", "0.0 dB"}, labels.Labels)
	assert.Len(t, labels.TextStyle, len(series.X))
	assert.Greater(t, float64(labels.Offset.Y), 0.0)
}

func TestCurves_Distinct(t *testing.T) {
	require.Len(t, curves, 3)
	names := map[string]bool{}
	for _, c := range curves {
		names[c.name] = true
	}
	assert.Equal(t, map[string]bool{"dBu": true, "dBVU": true, "dBFS": true}, names)

	assert.Empty(t, curves[0].dashes, "dBu is solid")
	assert.NotEqual(t, len(curves[1].dashes), len(curves[2].dashes), "dBVU and dBFS use different dash patterns")
	assert.NotEqual(t, curves[0].shape, curves[1].shape)
	assert.NotEqual(t, curves[1].shape, curves[2].shape)
}

func TestRender_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r, err := New(Options{OutputDir: dir, Format: "svg", WidthInches: 6, HeightInches: 4})
	require.NoError(t, err)

	for _, std := range levels.Standards() {
		for _, scale := range []levels.Scale{levels.ScaleLinear, levels.ScaleLog} {
			path, err := r.Render(std, scale)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, r.FileName(std, scale)), path)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		}
	}
}

func TestRender_InvalidStandard(t *testing.T) {
	r, err := New(Options{OutputDir: t.TempDir()})
	require.NoError(t, err)

	_, err = r.Render(levels.Standard(4), levels.ScaleLinear)
	require.ErrorIs(t, err, levels.ErrInvalidStandard)
}
