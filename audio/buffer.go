// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is a complete, finite, mono block of float32 samples.
//
// Processing stages treat a Buffer as immutable: they read the input and
// return a new Buffer instead of writing into it.
type Buffer struct {
	SampleRate int
	Samples    []float32
}

// NewBuffer returns a zeroed buffer of n samples at sampleRate.
func NewBuffer(sampleRate, n int) *Buffer {
	return &Buffer{
		SampleRate: sampleRate,
		Samples:    make([]float32, n),
	}
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Seconds returns the buffer length in seconds (0 for an invalid rate).
func (b *Buffer) Seconds() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

// Duration returns the buffer length as a time.Duration.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		SampleRate: b.SampleRate,
		Samples:    make([]float32, len(b.Samples)),
	}
	copy(out.Samples, b.Samples)

	return out
}

// Validate reports whether b is usable as pipeline input. The DSP stages
// accept empty buffers; loaders use Validate to reject them up front.
func (b *Buffer) Validate() error {
	if b == nil || b.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(b.Samples) == 0 {
		return ErrEmptyBuffer
	}

	return nil
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%d samples @ %d Hz (%.2fs)", len(b.Samples), b.SampleRate, b.Seconds())
}
