// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/utils"
)

// go-mp3 always emits interleaved stereo, 16-bit little-endian.
const (
	outputChannels = 2
	bytesPerSample = 2
	defaultBufSize = 4096
)

// ErrNotMP3File is returned when no MPEG audio frame can be parsed.
var ErrNotMP3File = errors.New("not an MP3 file")

type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	carry      []byte // odd trailing byte from the previous Read
}

func newSource(dec pcmReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, defaultBufSize*bytesPerSample),
		carry:      make([]byte, 0, 1),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	pre := copy(s.buf, s.carry)
	s.carry = s.carry[:0]

	n, err := s.dec.Read(s.buf[pre:])
	n += pre

	samples := n / bytesPerSample
	for i := range samples {
		dst[i] = utils.PCM16ToFloat(int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:])))
	}
	if n%bytesPerSample != 0 {
		s.carry = append(s.carry, s.buf[n-1])
	}

	switch {
	case err == nil:
		return samples, nil
	case errors.Is(err, io.EOF):
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("decoding MP3: %w", err)
	}
}

// Decoder decodes MPEG-1/2 Layer III streams through
// github.com/hajimehoshi/go-mp3. The source is always stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}
