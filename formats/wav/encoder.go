// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/utils"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header.
	HeaderSize = 44

	pcmFormat     = 1
	monoChannels  = 1
	bitsPerSample = 16
	bytesPerFrame = monoChannels * bitsPerSample / 8

	writeChunk = 8192 // samples per Write call
)

// Header returns the 44-byte header for numSamples mono 16-bit samples at
// sampleRate.
func Header(sampleRate, numSamples int) []byte {
	dataSize := uint32(numSamples * bytesPerFrame)
	header := make([]byte, HeaderSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], monoChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*bytesPerFrame))
	binary.LittleEndian.PutUint16(header[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// Encode returns b as a mono 16-bit PCM WAV file. Samples are clamped to
// [-1, 1]; see utils.FloatToPCM16 for the integer mapping.
func Encode(b *audio.Buffer) []byte {
	out := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(b.Samples)*bytesPerFrame))
	// bytes.Buffer writes cannot fail
	_ = Write(out, b)

	return out.Bytes()
}

// Write streams the same bytes Encode returns to w.
func Write(w io.Writer, b *audio.Buffer) error {
	if _, err := w.Write(Header(b.SampleRate, len(b.Samples))); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(b.Samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(b.Samples), writeChunk)*bytesPerFrame)
	for i := 0; i < len(b.Samples); i += writeChunk {
		chunk := b.Samples[i:min(i+writeChunk, len(b.Samples))]
		buf = buf[:len(chunk)*bytesPerFrame]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:], uint16(utils.FloatToPCM16(s)))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing WAV samples: %w", err)
		}
	}

	return nil
}
