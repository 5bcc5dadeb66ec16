// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/echofx/audio"
)

func sine(rate, n int, freq float64) *audio.Buffer {
	b := audio.NewBuffer(rate, n)
	for i := range b.Samples {
		b.Samples[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return b
}

func TestDominantFrequency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rate      int
		n         int
		freq      float64
		maxWindow int
		tolerance float64
	}{
		{"on bin", 8000, 8000, 1000, 4096, 0.5},
		{"between bins", 44100, 44100, 440, 0, 2},
		{"short buffer", 16000, 1500, 3000, 0, 16000.0 / 1024},
		{"low tone", 22050, 22050, 100, 16384, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DominantFrequency(sine(tt.rate, tt.n, tt.freq), tt.maxWindow)
			require.NoError(t, err)
			assert.InDelta(t, tt.freq, got, tt.tolerance)
		})
	}
}

func TestDominantFrequency_Errors(t *testing.T) {
	t.Parallel()

	_, err := DominantFrequency(audio.NewBuffer(8000, 3), 0)
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = DominantFrequency(&audio.Buffer{Samples: make([]float32, 64)}, 0)
	assert.ErrorIs(t, err, audio.ErrInvalidSampleRate)
}

func TestFloorPow2(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 1000: 512, 1024: 1024, 1025: 1024} {
		assert.Equal(t, want, floorPow2(n), "n=%d", n)
	}
}
