package levels

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

// CalibrationPoint relates one normalized level to the three decibel scales.
type CalibrationPoint struct {
	// NDI is the normalized linear level.
	NDI float64

	// Label is the tick text for NDI as printed on charts.
	Label string

	DBu  float64
	DBVU float64
	DBFS float64

	// IsFloor marks the silence point. Its decibel values are negative
	// infinity and charts draw them at FloorDB.
	IsFloor bool
}

// Table is the calibration table of one standard.
type Table struct {
	Standard Standard
	Title    string
	Points   []CalibrationPoint
}

func silence() CalibrationPoint {
	inf := math.Inf(-1)
	return CalibrationPoint{NDI: 0.0, Label: "0.0", DBu: inf, DBVU: inf, DBFS: inf, IsFloor: true}
}

var (
	smpteTable = Table{
		Standard: SMPTE,
		Title:    "SMPTE Audio Levels - Reference Level",
		Points: []CalibrationPoint{
			silence(),
			{NDI: 0.063, Label: "0.063", DBu: -20, DBVU: -24, DBFS: -44},
			{NDI: 0.1, Label: "0.1", DBu: -16, DBVU: -20, DBFS: -40},
			{NDI: 0.63, Label: "0.63", DBu: 0, DBVU: -4, DBFS: -24},
			{NDI: 1.0, Label: "1.0", DBu: 4, DBVU: 0, DBFS: -20},
			{NDI: 10.0, Label: "10.0", DBu: 24, DBVU: 20, DBFS: 0},
		},
	}

	ebuTable = Table{
		Standard: EBU,
		Title:    "EBU Audio Levels - Reference Level",
		Points: []CalibrationPoint{
			silence(),
			{NDI: 0.063, Label: "0.063", DBu: -20, DBVU: -24, DBFS: -38},
			{NDI: 0.1, Label: "0.1", DBu: -16, DBVU: -20, DBFS: -34},
			{NDI: 0.63, Label: "0.63", DBu: 0, DBVU: -4, DBFS: -18},
			{NDI: 1.0, Label: "1.0", DBu: 4, DBVU: 0, DBFS: -14},
			{NDI: 5.01, Label: "5.01", DBu: 18, DBVU: 14, DBFS: 0},
		},
	}
)

// TableFor returns the calibration table of a standard. The returned table
// owns its points; changing them does not affect later calls.
func TableFor(std Standard) (Table, error) {
	var src *Table
	switch std {
	case SMPTE:
		src = &smpteTable
	case EBU:
		src = &ebuTable
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrInvalidStandard, std)
	}

	points := make([]CalibrationPoint, len(src.Points))
	copy(points, src.Points)
	return Table{Standard: src.Standard, Title: src.Title, Points: points}, nil
}

// Validate checks the table has pointsPerTable points with strictly
// increasing NDI.
func (t Table) Validate() error {
	if len(t.Points) != pointsPerTable {
		return fmt.Errorf("%w: %s has %d points, want %d", ErrInvalidTable, t.Standard, len(t.Points), pointsPerTable)
	}
	for i := 1; i < len(t.Points); i++ {
		if t.Points[i].NDI <= t.Points[i-1].NDI {
			return fmt.Errorf("%w: %s NDI not increasing at point %d (%g <= %g)",
				ErrInvalidTable, t.Standard, i, t.Points[i].NDI, t.Points[i-1].NDI)
		}
	}
	return nil
}

// NDI returns the normalized levels in table order.
func (t Table) NDI() []float64 {
	return t.column(func(p CalibrationPoint) float64 { return p.NDI })
}

// DBu returns the dBu column. The floor point is negative infinity.
func (t Table) DBu() []float64 {
	return t.column(func(p CalibrationPoint) float64 { return p.DBu })
}

// DBVU returns the dBVU column. The floor point is negative infinity.
func (t Table) DBVU() []float64 {
	return t.column(func(p CalibrationPoint) float64 { return p.DBVU })
}

// DBFS returns the dBFS column. The floor point is negative infinity.
func (t Table) DBFS() []float64 {
	return t.column(func(p CalibrationPoint) float64 { return p.DBFS })
}

// Labels returns the tick labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.Points))
	for i, p := range t.Points {
		labels[i] = p.Label
	}
	return labels
}

func (t Table) column(get func(CalibrationPoint) float64) []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = get(p)
	}
	return out
}

// Series is chart-ready data derived from a Table.
type Series struct {
	Title  string
	Scale  Scale
	X      []float64
	Labels []string
	DBu    []float64
	DBVU   []float64
	DBFS   []float64
}

// Series prepares the table for drawing. Floor points are drawn at FloorDB.
// On a logarithmic axis a zero level is moved to LogAxisEpsilon while its
// label keeps the original text.
func (t Table) Series(scale Scale) Series {
	n := len(t.Points)
	s := Series{
		Title:  t.Title,
		Scale:  scale,
		X:      make([]float64, n),
		Labels: t.Labels(),
		DBu:    make([]float64, n),
		DBVU:   make([]float64, n),
		DBFS:   make([]float64, n),
	}

	for i, p := range t.Points {
		x := p.NDI
		if scale == ScaleLog && x == 0 {
			x = LogAxisEpsilon
		}
		s.X[i] = x

		if p.IsFloor {
			s.DBu[i], s.DBVU[i], s.DBFS[i] = FloorDB, FloorDB, FloorDB
			continue
		}
		s.DBu[i], s.DBVU[i], s.DBFS[i] = p.DBu, p.DBVU, p.DBFS
	}

	return s
}

// FormatDB renders a decibel value the way charts annotate points.
func FormatDB(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf dB"
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + " dB"
}

// FormatTable writes the table as aligned text columns.
func FormatTable(w io.Writer, t Table) error {
	if _, err := fmt.Fprintln(w, t.Title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NDI\tdBu\tdBVU\tdBFS\t"); err != nil {
		return err
	}
	for _, p := range t.Points {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			p.Label, FormatDB(p.DBu), FormatDB(p.DBVU), FormatDB(p.DBFS)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
