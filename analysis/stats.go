// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/tphakala/simd/f32"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

// Stats summarizes the level of a buffer.
type Stats struct {
	Samples    int
	SampleRate int
	Duration   time.Duration
	Peak       float32 // max |s|
	PeakDBFS   float64 // -Inf for silence
	RMS        float64
	DC         float64 // mean sample value
}

// Measure computes Stats for b. An empty buffer yields zero levels and a
// PeakDBFS of -Inf.
func Measure(b *audio.Buffer) Stats {
	st := Stats{
		Samples:    b.Len(),
		SampleRate: b.SampleRate,
		Duration:   b.Duration(),
		PeakDBFS:   math.Inf(-1),
	}
	if st.Samples == 0 {
		return st
	}

	n := float64(st.Samples)
	st.Peak = dsp.Peak(b.Samples)
	st.PeakDBFS = core.LinearToDB(float64(st.Peak))
	st.DC = float64(f32.Sum(b.Samples)) / n
	st.RMS = math.Sqrt(float64(f32.DotProductUnsafe(b.Samples, b.Samples)) / n)

	return st
}

// RMSDBFS is the RMS level in dB relative to full scale.
func (s Stats) RMSDBFS() float64 {
	return core.LinearToDB(s.RMS)
}

func (s Stats) String() string {
	return fmt.Sprintf("%.2fs, peak %.3f (%.1f dBFS), rms %.3f, dc %+.4f",
		s.Duration.Seconds(), s.Peak, s.PeakDBFS, s.RMS, s.DC)
}
