// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
)

// EchoParams controls the feedback delay.
type EchoParams struct {
	// Alpha is the feedback gain applied to the delayed output. Values with
	// |Alpha| >= 1 are accepted and grow without bound; the normalizer tames
	// them afterwards.
	Alpha float64
	// DelayMs is the echo spacing in milliseconds.
	DelayMs float64
	// TailSeconds is the silence appended after the input so the echoes can
	// ring out.
	TailSeconds float64
}

// MaxSamples bounds the delay, tail and output lengths Echo accepts.
const MaxSamples = math.MaxInt32

// DefaultEchoParams returns alpha 0.5, 300 ms delay and a 2 s tail.
func DefaultEchoParams() EchoParams {
	return EchoParams{Alpha: 0.5, DelayMs: 300, TailSeconds: 2}
}

// DelaySamples converts DelayMs to a sample count at sampleRate, rounding
// half away from zero.
func (p EchoParams) DelaySamples(sampleRate int) int {
	return int(math.Round(p.DelayMs / 1000 * float64(sampleRate)))
}

// TailSamples converts TailSeconds to a sample count at sampleRate.
func (p EchoParams) TailSamples(sampleRate int) int {
	return int(math.Round(p.TailSeconds * float64(sampleRate)))
}

// Validate rejects non-finite values and negative durations.
func (p EchoParams) Validate() error {
	if !finite(p.Alpha) {
		return fmt.Errorf("%w: alpha %v", ErrInvalidParameter, p.Alpha)
	}
	if !finite(p.DelayMs) || p.DelayMs < 0 {
		return fmt.Errorf("%w: delay %vms", ErrInvalidParameter, p.DelayMs)
	}
	if !finite(p.TailSeconds) || p.TailSeconds < 0 {
		return fmt.Errorf("%w: tail %vs", ErrInvalidParameter, p.TailSeconds)
	}

	return nil
}

// ValidateFor runs Validate and also rejects a delay or tail longer than
// MaxSamples at sampleRate.
func (p EchoParams) ValidateFor(sampleRate int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	fs := float64(sampleRate)
	if d := math.Round(p.DelayMs / 1000 * fs); d > MaxSamples {
		return fmt.Errorf("%w: delay %vms is %g samples at %d Hz", ErrInvalidParameter, p.DelayMs, d, sampleRate)
	}
	if n := math.Round(p.TailSeconds * fs); n > MaxSamples {
		return fmt.Errorf("%w: tail %vs is %g samples at %d Hz", ErrInvalidParameter, p.TailSeconds, n, sampleRate)
	}

	return nil
}

func (p EchoParams) String() string {
	return fmt.Sprintf("alpha=%.2f delay=%gms tail=%gs", p.Alpha, p.DelayMs, p.TailSeconds)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
