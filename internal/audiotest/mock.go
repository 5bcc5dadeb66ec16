// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by sources created with NewFailingSource.
var ErrMockRead = errors.New("audiotest: read failed")

// Waveform returns the value of channel ch at frame index i.
type Waveform func(i, ch int) float32

// Source generates a fixed number of frames from a Waveform. It satisfies
// audio.Source without importing it.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	pos        int
	wave       Waveform
	failAfter  int // frames before ReadSamples starts failing; <0 never
	closed     bool
}

// NewSource creates a source of frames frames per channel.
func NewSource(sampleRate, channels, frames int, wave Waveform) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		wave:       wave,
		failAfter:  -1,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, frames int) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource generates the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, freq float64) *Source {
	return NewSource(sampleRate, channels, frames, func(i, _ int) float32 {
		t := float64(i) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

// NewStereoSource generates constant left and right values.
func NewStereoSource(sampleRate, frames int, left, right float32) *Source {
	return NewSource(sampleRate, 2, frames, func(_, ch int) float32 {
		if ch == 0 {
			return left
		}
		return right
	})
}

// NewImpulseSource generates a unit impulse at frame 0 followed by silence.
func NewImpulseSource(sampleRate, frames int) *Source {
	return NewSource(sampleRate, 1, frames, func(i, _ int) float32 {
		if i == 0 {
			return 1
		}
		return 0
	})
}

// NewFailingSource behaves like a silent mono source for failAfter frames
// and then returns ErrMockRead.
func NewFailingSource(sampleRate, frames, failAfter int) *Source {
	s := NewSilentSource(sampleRate, 1, frames)
	s.failAfter = failAfter
	return s
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

// Reset rewinds the source to its first frame.
func (s *Source) Reset() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.failAfter >= 0 && s.pos >= s.failAfter {
		return 0, ErrMockRead
	}
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, s.frames-s.pos)
	if s.failAfter >= 0 {
		frames = min(frames, s.failAfter-s.pos)
	}

	for f := range frames {
		for ch := range s.channels {
			dst[f*s.channels+ch] = s.wave(s.pos+f, ch)
		}
	}
	s.pos += frames

	if s.pos >= s.frames {
		return frames * s.channels, io.EOF
	}

	return frames * s.channels, nil
}
