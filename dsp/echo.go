// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"context"
	"fmt"

	"github.com/ik5/echofx/audio"
)

// DefaultCheckInterval is the number of samples processed between
// cancellation checks.
const DefaultCheckInterval = 4096

type echoConfig struct {
	checkInterval int
}

// EchoOption configures Echo.
type EchoOption func(*echoConfig)

// WithCheckInterval sets how many samples Echo processes between context
// checks. Non-positive values are ignored.
func WithCheckInterval(samples int) EchoOption {
	return func(cfg *echoConfig) {
		if samples > 0 {
			cfg.checkInterval = samples
		}
	}
}

// Echo applies y[n] = x[n] + alpha*y[n-d] to in, where d is the delay in
// samples and x is zero past the end of the input. The first d output
// samples copy the input. The result is len(in)+tail samples long and in is
// left untouched.
//
// A zero delay makes the filter a passthrough.
func Echo(ctx context.Context, in *audio.Buffer, p EchoParams, opts ...EchoOption) (*audio.Buffer, error) {
	if in == nil || in.SampleRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}
	if err := p.ValidateFor(in.SampleRate); err != nil {
		return nil, err
	}

	cfg := echoConfig{checkInterval: DefaultCheckInterval}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	x := in.Samples
	nd := p.DelaySamples(in.SampleRate)
	tail := p.TailSamples(in.SampleRate)
	if len(x) > MaxSamples-tail {
		return nil, fmt.Errorf("%w: output of %d+%d samples", ErrInvalidParameter, len(x), tail)
	}
	total := len(x) + tail

	out := audio.NewBuffer(in.SampleRate, total)
	y := out.Samples

	for n := range total {
		if n%cfg.checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("echo interrupted at sample %d: %w", n, err)
			}
		}

		var xn float64
		if n < len(x) {
			xn = float64(x[n])
		}

		if nd == 0 || n < nd {
			y[n] = float32(xn)
			continue
		}

		y[n] = float32(xn + p.Alpha*float64(y[n-nd]))
	}

	return out, nil
}
