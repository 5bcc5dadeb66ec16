// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/echofx/audio"
)

const defaultBufSize = 4096

// ErrNotVorbisFile is returned when the input has no Ogg Vorbis headers.
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

type floatReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec      floatReader
	channels int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return defaultBufSize }

// ReadSamples decodes straight into dst. The returned count is in samples;
// dst is trimmed to a whole number of frames first.
func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF):
		return n, io.EOF
	default:
		return n, fmt.Errorf("decoding Vorbis: %w", err)
	}
}

// Decoder decodes Ogg Vorbis streams through github.com/jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: no channels", ErrNotVorbisFile)
	}

	return &source{dec: dec, channels: dec.Channels()}, nil
}
