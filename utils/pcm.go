// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
)

const (
	// PCM16NegScale maps -1.0 onto math.MinInt16.
	PCM16NegScale = 0x8000
	// PCM16PosScale maps +1.0 onto math.MaxInt16.
	PCM16PosScale = 0x7FFF
)

// FloatToPCM16 clamps x to [-1, 1] and converts it to a signed 16-bit
// sample with the asymmetric WAV scale: negative values are multiplied by
// 32768 and non-negative values by 32767. The product is truncated toward
// zero. NaN encodes as silence.
func FloatToPCM16(x float32) int16 {
	if math.IsNaN(float64(x)) {
		return 0
	}

	v := dspcore.Clamp(float64(x), -1, 1)
	if v < 0 {
		return int16(v * PCM16NegScale)
	}

	return int16(v * PCM16PosScale)
}

// PCM16ToFloat is the inverse of FloatToPCM16 up to one quantization step.
func PCM16ToFloat(v int16) float32 {
	if v < 0 {
		return float32(v) / PCM16NegScale
	}

	return float32(v) / PCM16PosScale
}
