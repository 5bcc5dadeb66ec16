// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	defaultCollectSize = 4096
	// maxEmptyReads bounds how many (0, nil) reads are tolerated before a
	// source is considered stuck.
	maxEmptyReads = 64
)

// Collect drains src into a mono Buffer.
//
// The stream is optionally resampled to targetRate (0 keeps the source
// rate) and then downmixed by averaging channels:
//  1. Resample with cubic interpolation when targetRate differs
//  2. Convert to mono with MonoMixer
//  3. Read until io.EOF, checking ctx between reads
//
// bufferSize is the read size in frames; 0 uses the source's BufSize.
// Collect does not close src.
func Collect(ctx context.Context, src Source, targetRate, bufferSize int) (*Buffer, error) {
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if src.Channels() <= 0 {
		return nil, ErrNoChannels
	}

	var stream Source = src
	if targetRate > 0 && targetRate != src.SampleRate() {
		stream = NewResampler(stream, targetRate)
	}
	mono := NewMonoMixer(stream)

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = defaultCollectSize
	}

	out := &Buffer{
		SampleRate: mono.SampleRate(),
		Samples:    make([]float32, 0, bufferSize),
	}
	buf := make([]float32, bufferSize)
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("collect interrupted: %w", err)
		}

		n, err := mono.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty > maxEmptyReads {
				return nil, fmt.Errorf("reading source: %w", io.ErrNoProgress)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	return out, nil
}
