// SPDX-License-Identifier: EPL-2.0

// Package pcmsource adapts go-audio integer PCM decoders to audio.Source.
package pcmsource

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/echofx/utils"
)

// ErrUnsupportedBitDepth is returned by New for depths other than 8, 16,
// 24 and 32.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

const defaultBufSize = 4096

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams float32 samples out of a go-audio PCM decoder.
type Source struct {
	dec    Reader
	format *goaudio.Format
	scale  func(int) float32
	intBuf *goaudio.IntBuffer
	closer io.Closer
}

// Option configures a Source.
type Option func(*Source)

// WithCloser makes Close release c.
func WithCloser(c io.Closer) Option {
	return func(s *Source) { s.closer = c }
}

// New wraps dec. unsigned8 selects offset-binary decoding for 8-bit data
// (WAV stores 8-bit samples unsigned, AIFF signed).
func New(dec Reader, format *goaudio.Format, bitDepth int, unsigned8 bool, opts ...Option) (*Source, error) {
	scale, err := scaler(bitDepth, unsigned8)
	if err != nil {
		return nil, err
	}

	s := &Source{dec: dec, format: format, scale: scale}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func scaler(bitDepth int, unsigned8 bool) (func(int) float32, error) {
	switch bitDepth {
	case 8:
		if unsigned8 {
			return func(v int) float32 { return float32(v-128) / 128 }, nil
		}
		return func(v int) float32 { return float32(v) / 128 }, nil
	case 16:
		return func(v int) float32 { return utils.PCM16ToFloat(int16(v)) }, nil
	case 24:
		return func(v int) float32 { return float32(v) / (1 << 23) }, nil
	case 32:
		return func(v int) float32 { return float32(float64(v) / (1 << 31)) }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}

	return defaultBufSize
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.format,
		}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	for i, v := range s.intBuf.Data[:n] {
		dst[i] = s.scale(v)
	}

	switch {
	case err != nil && !errors.Is(err, io.EOF):
		return n, fmt.Errorf("decoding PCM: %w", err)
	case n < len(dst):
		return n, io.EOF
	}

	return n, nil
}
