// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/echofx/utils"
)

// Resampler converts an interleaved Source to another sample rate with
// Catmull-Rom interpolation. Channel count is preserved. When downsampling
// every source frame first passes through a one-pole low-pass to tame
// aliasing.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	step     float64 // source frames advanced per output frame

	// hist holds four consecutive frames; output is interpolated between
	// hist[1] and hist[2] at fractional offset pos.
	hist   [4][]float32
	real   [4]bool
	pos    float64
	primed bool

	srcBuf []float32
	bufPos int
	bufLen int
	eof    bool
	err    error

	smooth  bool
	settled bool
	coef    float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		channels: channels,
		dstRate:  dstRate,
		step:     step,
		srcBuf:   make([]float32, 1024*max(channels, 1)),
		smooth:   step > 1,
		state:    make([]float32, max(channels, 1)),
	}
	if r.smooth {
		r.coef = float32(1 / step)
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, max(channels, 1))
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst.
func (r *Resampler) nextFrame(dst []float32) bool {
	for empty := 0; r.bufPos >= r.bufLen; {
		if r.eof {
			return false
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		r.bufLen = n - n%r.channels
		r.bufPos = 0

		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			r.err = fmt.Errorf("resampler source: %w", err)
			r.eof = true
		case n == 0:
			empty++
			if empty > maxEmptyReads {
				r.err = io.ErrNoProgress
				r.eof = true
			}
		}
	}

	copy(dst, r.srcBuf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.smooth {
		if !r.settled {
			// start the filter on the first frame to avoid a fade-in
			copy(r.state, dst)
			r.settled = true
		}
		for c := range dst {
			dst[c] = r.coef*dst[c] + (1-r.coef)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true
}

func (r *Resampler) prime() {
	r.primed = true

	if !r.nextFrame(r.hist[1]) {
		return
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])
	r.real[0] = true

	for i := 2; i < 4; i++ {
		if r.nextFrame(r.hist[i]) {
			r.real[i] = true
		} else {
			copy(r.hist[i], r.hist[i-1])
		}
	}
}

func (r *Resampler) shift() {
	oldest := r.hist[0]
	r.hist[0], r.hist[1], r.hist[2] = r.hist[1], r.hist[2], r.hist[3]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	r.hist[3] = oldest

	if r.nextFrame(r.hist[3]) {
		r.real[3] = true
	} else {
		copy(r.hist[3], r.hist[2])
		r.real[3] = false
	}
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.channels <= 0 {
		return 0, ErrNoChannels
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		r.prime()
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			r.shift()
		}
		if !r.real[1] || !r.real[2] {
			break
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	if r.err != nil {
		return written, r.err
	}
	if written < len(dst) {
		return written, io.EOF
	}

	return written, nil
}
