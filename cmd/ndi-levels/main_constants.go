package main

// Version is printed by --version.
const Version = "v1.0.0"

// Default command-line flag values
const (
	defaultStandard = "smpte"
	verboseLogLevel = "debug"
)

// Demo buffer format for one-shot conversions
const (
	oneShotSampleRate = 48000 // Nominal; conversion does not depend on rate
	oneShotChannels   = 1
)
