package levels

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/tphakala/simd/f64"
)

// Convert maps a floating-point sample to a signed 16-bit value for the given
// standard. The scaled value is truncated toward zero and saturated to
// [MinSample16, MaxSample16]; infinities saturate, NaN is rejected.
func Convert(std Standard, value float64) (int, error) {
	multiplier, err := std.Multiplier()
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) {
		return 0, fmt.Errorf("%w: NaN", ErrInvalidSample)
	}
	return clamp16(multiplier * value), nil
}

// ConvertSamples converts a slice of samples. Scaling is done in one SIMD
// pass; truncation and saturation follow Convert exactly.
func ConvertSamples(std Standard, samples []float64) ([]int, error) {
	multiplier, err := std.Multiplier()
	if err != nil {
		return nil, err
	}

	scaled := make([]float64, len(samples))
	f64.Scale(scaled, samples, multiplier)

	out := make([]int, len(samples))
	for i, v := range scaled {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: NaN at index %d", ErrInvalidSample, i)
		}
		out[i] = clamp16(v)
	}
	return out, nil
}

// ConvertBuffer converts a float buffer into a 16-bit int buffer with the
// same format.
func ConvertBuffer(std Standard, buf *audio.FloatBuffer) (*audio.IntBuffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, audio.ErrInvalidBuffer
	}

	data, err := ConvertSamples(std, buf.Data)
	if err != nil {
		return nil, err
	}

	return &audio.IntBuffer{
		Format:         buf.Format,
		Data:           data,
		SourceBitDepth: bitDepth16,
	}, nil
}

// clamp16 truncates toward zero and saturates. Bounds are checked in the
// float domain so out of range and infinite values never hit int conversion.
func clamp16(v float64) int {
	t := math.Trunc(v)
	if t >= MaxSample16 {
		return MaxSample16
	}
	if t <= MinSample16 {
		return MinSample16
	}
	return int(t)
}
