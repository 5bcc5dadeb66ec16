// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/internal/pcmsource"
)

const supportedBitDepth = 16

// Decoder decodes 16-bit PCM AIFF files through github.com/go-audio/aiff.
type Decoder struct{}

// Decode parses the COMM chunk of r and returns a streaming source. Inputs
// that are not an io.ReadSeeker are read into memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading AIFF data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	if dec.BitDepth != supportedBitDepth {
		return nil, fmt.Errorf("%w: got %d-bit", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := pcmsource.New(dec, format, supportedBitDepth, false)
	if err != nil {
		return nil, err
	}

	return src, nil
}
