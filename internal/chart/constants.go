package chart

// Figure defaults (inches)
const (
	DefaultWidthInches  = 12.0
	DefaultHeightInches = 8.0
	DefaultFormat       = "png"
)

// Styling in points
const (
	lineWidth         = 1.5
	glyphRadius       = 3.5
	annotationOffset  = 10.0 // Vertical gap between a point and its label
	dashOn            = 6.0
	dashOff           = 4.0
	dotOn             = 1.5
)

// Axis padding
const (
	linearXMarginRatio = 0.03 // Fraction of the x span added on each side
	logXMarginFactor   = 1.5  // Multiplicative margin on a log axis
	yMarginBelowDB     = 5.0
	yMarginAboveDB     = 8.0 // Leaves room for annotations over the top point
)

const (
	xAxisLabel = "NDI"
	yAxisLabel = "Audio Level (dB)"
)
