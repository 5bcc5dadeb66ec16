// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ik5/echofx/audio"
)

// DefaultFrequencyWindow is the FFT size DominantFrequency uses when
// maxWindow is not positive.
const DefaultFrequencyWindow = 8192

// DominantFrequency returns the frequency in Hz of the strongest spectral
// peak in the first samples of b, ignoring DC. The FFT size is the largest
// power of two not above min(len(b), maxWindow); the block is Hann-windowed
// and the peak refined by parabolic interpolation over the log magnitudes.
func DominantFrequency(b *audio.Buffer, maxWindow int) (float64, error) {
	if b.SampleRate <= 0 {
		return 0, audio.ErrInvalidSampleRate
	}
	if maxWindow <= 0 {
		maxWindow = DefaultFrequencyWindow
	}

	size := floorPow2(min(b.Len(), maxWindow))
	if size < 4 {
		return 0, fmt.Errorf("%w: %d samples", ErrTooShort, b.Len())
	}

	block := make([]float64, size)
	for i, s := range b.Samples[:size] {
		block[i] = float64(s)
	}

	coeffs, err := window.Hann(size, window.WithPeriodic())
	if err != nil {
		return 0, fmt.Errorf("hann window: %w", err)
	}
	if err := window.ApplyCoefficientsInPlace(block, coeffs); err != nil {
		return 0, fmt.Errorf("applying window: %w", err)
	}

	fft := fourier.NewFFT(size)
	spectrum := fft.Coefficients(nil, block)

	peak := 1
	for i := 2; i < len(spectrum); i++ {
		if cmplx.Abs(spectrum[i]) > cmplx.Abs(spectrum[peak]) {
			peak = i
		}
	}

	offset := 0.0
	if peak+1 < len(spectrum) {
		a := logMag(spectrum[peak-1])
		m := logMag(spectrum[peak])
		c := logMag(spectrum[peak+1])
		if d := a - 2*m + c; d < 0 {
			offset = 0.5 * (a - c) / d
		}
	}

	return (fft.Freq(peak) + offset/float64(size)) * float64(b.SampleRate), nil
}

func logMag(c complex128) float64 {
	return math.Log(cmplx.Abs(c) + 1e-300)
}

func floorPow2(n int) int {
	if n <= 0 {
		return 0
	}

	return 1 << (bits.Len(uint(n)) - 1)
}
