// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the offline signal stages of the echo engine.
//
// Every stage takes a complete mono *audio.Buffer and returns a new one; no
// stage mutates its input.
//
// # Test Signal
//
// Generate returns a 5 s, 44.1 kHz signal: a 200 to 2000 Hz linear chirp at
// amplitude 0.3 with three half-sine tone bursts, normalized to peak 0.8.
// NewGenerator accepts options to change rate, duration and amplitudes.
//
// # Echo
//
// Echo implements the recursive comb filter
//
//	y[n] = x[n] + alpha*y[n-d]
//
// with x[n] = 0 past the end of the input and y[n] = x[n] for n < d. The
// output is len(x) plus the tail long. Long inputs check the context every
// DefaultCheckInterval samples:
//
//	out, err := dsp.Echo(ctx, in, dsp.EchoParams{Alpha: 0.5, DelayMs: 300, TailSeconds: 2})
//
// # Normalization
//
// Normalize only attenuates: a buffer whose peak exceeds 1.0 is scaled so its
// peak becomes 0.95. Quieter buffers are copied unchanged.
//
// # Waveform Envelope
//
// Reduce folds a buffer into a fixed number of min/max columns for display.
// Columns that cover no samples keep the sentinel (Min 1, Max -1) and report
// Empty.
package dsp
