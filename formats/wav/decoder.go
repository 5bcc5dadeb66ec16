// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/internal/pcmsource"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder decodes integer PCM WAV files of any chunk layout through
// github.com/go-audio/wav.
type Decoder struct{}

// Decode parses the header of r and returns a streaming source. Inputs that
// are not an io.ReadSeeker are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading WAV data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedFormat)
	}

	src, err := pcmsource.New(dec, format, int(dec.BitDepth), true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	return src, nil
}
