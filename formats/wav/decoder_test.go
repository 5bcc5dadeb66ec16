// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

type wavFixture struct {
	formatTag  uint16
	channels   int
	sampleRate int
	bitDepth   int
	junk       []byte // optional chunk between fmt and data
	data       []byte
}

// buildWAV assembles a RIFF file by hand so the decoder is tested against
// layouts Encode never produces.
func buildWAV(s wavFixture) []byte {
	le := binary.LittleEndian
	body := new(bytes.Buffer)

	body.WriteString("WAVE")

	body.WriteString("fmt ")
	_ = binary.Write(body, le, uint32(16))
	_ = binary.Write(body, le, s.formatTag)
	_ = binary.Write(body, le, uint16(s.channels))
	_ = binary.Write(body, le, uint32(s.sampleRate))
	blockAlign := s.channels * s.bitDepth / 8
	_ = binary.Write(body, le, uint32(s.sampleRate*blockAlign))
	_ = binary.Write(body, le, uint16(blockAlign))
	_ = binary.Write(body, le, uint16(s.bitDepth))

	if s.junk != nil {
		body.WriteString("JUNK")
		_ = binary.Write(body, le, uint32(len(s.junk)))
		body.Write(s.junk)
	}

	body.WriteString("data")
	_ = binary.Write(body, le, uint32(len(s.data)))
	body.Write(s.data)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	_ = binary.Write(out, le, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func int16Bytes(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 3)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
	}
}

func TestDecoder_Mono16(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavFixture{
		formatTag: formatPCM, channels: 1, sampleRate: 8000, bitDepth: 16,
		data: int16Bytes(0, 32767, -32768, 16384, -16384),
	})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, 8000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())

	got := readAll(t, src)
	require.Len(t, got, 5)
	assert.InDeltaSlice(t, []float32{0, 1, -1, 16384.0 / 32767, -0.5}, got, 1e-6)
}

func TestDecoder_Stereo16(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavFixture{
		formatTag: formatPCM, channels: 2, sampleRate: 44100, bitDepth: 16,
		data: int16Bytes(100, -100, 200, -200),
	})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 2, src.Channels())
	assert.Len(t, readAll(t, src), 4)
}

func TestDecoder_Unsigned8(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavFixture{
		formatTag: formatPCM, channels: 1, sampleRate: 8000, bitDepth: 8,
		data: []byte{0, 128, 192, 64},
	})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{-1, 0, 0.5, -0.5}, readAll(t, src), 1e-6)
}

func TestDecoder_24Bit(t *testing.T) {
	t.Parallel()

	// 0x400000 (0.5) and 0xC00000 (-0.5), little-endian
	data := buildWAV(wavFixture{
		formatTag: formatPCM, channels: 1, sampleRate: 48000, bitDepth: 24,
		data: []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0xC0},
	})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{0.5, -0.5}, readAll(t, src), 1e-6)
}

func TestDecoder_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	data := buildWAV(wavFixture{
		formatTag: formatPCM, channels: 1, sampleRate: 8000, bitDepth: 16,
		junk: make([]byte, 28),
		data: int16Bytes(32767, 0),
	})

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1, 0}, readAll(t, src), 1e-6)
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := Encode(&audio.Buffer{SampleRate: 8000, Samples: []float32{0.25, -0.25}})

	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Len(t, readAll(t, src), 2)
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotWavFile},
		{"text", []byte("this is definitely not a RIFF file at all, just text padding"), ErrNotWavFile},
		{"float samples", buildWAV(wavFixture{
			formatTag: 3, channels: 1, sampleRate: 8000, bitDepth: 32, data: make([]byte, 8),
		}), ErrUnsupportedFormat},
		{"12-bit", buildWAV(wavFixture{
			formatTag: formatPCM, channels: 1, sampleRate: 8000, bitDepth: 12, data: make([]byte, 4),
		}), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, src)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := dsp.NewGenerator(dsp.WithSampleRate(8000), dsp.WithDuration(0.5)).Generate()
	in.Samples[10] = 1.4 // clipped on encode
	in.Samples[11] = -2

	src, err := Decoder{}.Decode(bytes.NewReader(Encode(in)))
	require.NoError(t, err)

	out, err := audio.Collect(context.Background(), src, 0, 0)
	require.NoError(t, err)

	require.Equal(t, in.SampleRate, out.SampleRate)
	require.Equal(t, in.Len(), out.Len())
	for i, want := range in.Samples {
		clamped := math.Max(-1, math.Min(1, float64(want)))
		assert.InDelta(t, clamped, out.Samples[i], 1.0/32767, "sample %d", i)
	}
}
