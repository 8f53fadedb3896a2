package levels

// Integer scale multipliers per standard
const (
	smpteMultiplier = 3276.8  // SMPTE: 1.0 NDI -> 3276 counts
	ebuMultiplier   = 6540.52 // EBU: 1.0 NDI -> 6540 counts
)

// 16-bit signed sample bounds
const (
	MinSample16 = -32768
	MaxSample16 = 32767
)

// Rendering-only substitutions
const (
	// FloorDB is where silence (negative infinity dB) is drawn on a chart.
	FloorDB = -60.0

	// LogAxisEpsilon replaces a zero level on a logarithmic x axis.
	LogAxisEpsilon = 0.001
)

// Table shape
const (
	pointsPerTable = 6
	bitDepth16     = 16
)
