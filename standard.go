package levels

import (
	"errors"
	"fmt"
	"strings"
)

// Standard identifies a broadcast calibration standard.
type Standard int

const (
	// SMPTE reference level: 0 dBFS sits 20 dB above the 0 VU alignment point.
	SMPTE Standard = iota

	// EBU reference level: 0 dBFS sits 14 dB above the 0 VU alignment point.
	EBU
)

// Common errors returned by the package.
var (
	// ErrInvalidStandard indicates a standard outside {SMPTE, EBU}.
	ErrInvalidStandard = errors.New("invalid standard")

	// ErrInvalidSample indicates a sample that cannot be converted (NaN).
	ErrInvalidSample = errors.New("invalid sample value")

	// ErrInvalidTable indicates a calibration table that breaks its shape invariants.
	ErrInvalidTable = errors.New("invalid calibration table")
)

var standardNames = [...]string{
	"SMPTE",
	"EBU",
}

// Standards lists every supported standard in menu order.
func Standards() []Standard {
	return []Standard{SMPTE, EBU}
}

func (s Standard) String() string {
	if s.valid() {
		return standardNames[s]
	}
	return fmt.Sprintf("Standard(%d)", int(s))
}

func (s Standard) valid() bool {
	return s >= SMPTE && int(s) < len(standardNames)
}

// ParseStandard parses a standard name, case-insensitively.
func ParseStandard(name string) (Standard, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SMPTE":
		return SMPTE, nil
	case "EBU":
		return EBU, nil
	default:
		return 0, fmt.Errorf("%w: %q (want SMPTE or EBU)", ErrInvalidStandard, name)
	}
}

// Multiplier returns the integer scale factor applied to samples.
func (s Standard) Multiplier() (float64, error) {
	switch s {
	case SMPTE:
		return smpteMultiplier, nil
	case EBU:
		return ebuMultiplier, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidStandard, s)
	}
}

// Scale selects the x axis mode of a chart.
type Scale int

const (
	// ScaleLinear draws NDI on a linear axis.
	ScaleLinear Scale = iota

	// ScaleLog draws NDI on a base-10 logarithmic axis.
	ScaleLog
)

func (s Scale) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleLog:
		return "log"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// ParseScale parses "linear" or "log" (also "logarithmic").
func ParseScale(name string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "lin":
		return ScaleLinear, nil
	case "log", "logarithmic":
		return ScaleLog, nil
	default:
		return 0, fmt.Errorf("unknown scale %q (want linear or log)", name)
	}
}
