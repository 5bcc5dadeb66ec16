// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource streams a Buffer as a mono Source.
type BufferSource struct {
	buf *Buffer
	pos int
}

func NewBufferSource(b *Buffer) *BufferSource {
	return &BufferSource{buf: b}
}

func (s *BufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *BufferSource) Channels() int   { return 1 }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

// Rewind restarts the stream from the first sample.
func (s *BufferSource) Rewind() { s.pos = 0 }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}

	return n, nil
}
