// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"github.com/tphakala/simd/f32"

	"github.com/ik5/echofx/audio"
)

const (
	// DefaultTargetPeak is the peak a clipping buffer is scaled down to.
	DefaultTargetPeak = 0.95
	// DefaultClipThreshold is the peak above which a buffer is scaled.
	DefaultClipThreshold = 1.0
)

// Peak returns max |s| over samples, or 0 for an empty slice.
func Peak(samples []float32) float32 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}

	return peak
}

// Normalize scales b down to DefaultTargetPeak when its peak exceeds
// DefaultClipThreshold.
func Normalize(b *audio.Buffer) *audio.Buffer {
	out, _ := NormalizeTo(b, DefaultTargetPeak, DefaultClipThreshold)
	return out
}

// Exceeds reports whether NormalizeTo scales a buffer with the given peak.
func Exceeds(peak, threshold float32) bool {
	return peak > 0 && peak > threshold
}

// NormalizeTo returns a copy of b. When the peak exceeds threshold every
// sample is multiplied by targetPeak/peak and the applied gain is returned;
// otherwise the copy is unchanged and the gain is 1. Quiet buffers are never
// boosted.
func NormalizeTo(b *audio.Buffer, targetPeak, threshold float32) (*audio.Buffer, float32) {
	out := b.Clone()

	peak := Peak(out.Samples)
	if !Exceeds(peak, threshold) {
		return out, 1
	}

	gain := targetPeak / peak
	f32.Scale(out.Samples, out.Samples, gain)

	return out, gain
}
