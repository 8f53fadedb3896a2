// Package levels maps broadcast reference levels between a normalized signal
// scale and decibel scales, and converts floating-point samples to 16-bit
// integers for the SMPTE and EBU calibration standards.
//
// # Calibration Tables
//
// Each [Standard] owns six calibration points that relate a normalized level
// (NDI units) to dBu, dBVU and dBFS. The first point is the silence point: its
// decibel values are negative infinity and it is tagged with
// [CalibrationPoint.IsFloor].
//
//	table, err := levels.TableFor(levels.SMPTE)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range table.Points {
//	    fmt.Println(p.Label, p.DBu, p.DBVU, p.DBFS)
//	}
//
// Chart data is prepared with [Table.Series]. Floor points are drawn at
// [FloorDB] and, on a logarithmic axis, a zero level is drawn at
// [LogAxisEpsilon]. Neither substitution ever reaches the conversion path.
//
// # Sample Conversion
//
// [Convert] multiplies a sample by the standard's multiplier (SMPTE 3276.8,
// EBU 6540.52), truncates toward zero and saturates to [-32768, 32767]:
//
//	v, err := levels.Convert(levels.EBU, 1.0) // 6540
//
// [ConvertSamples] and [ConvertBuffer] apply the same rule to slices and to
// go-audio float buffers.
//
// # Errors
//
// An unknown standard yields [ErrInvalidStandard]; a NaN sample yields
// [ErrInvalidSample]. Infinite samples saturate like any other out of range
// value.
package levels
