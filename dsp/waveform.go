// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"iter"
)

// Column is the sample range covered by one display column. A column whose
// window held no samples keeps the sentinel Min=1, Max=-1.
type Column struct {
	Min float32
	Max float32
}

// Empty reports whether the column still holds the sentinel.
func (c Column) Empty() bool { return c.Min > c.Max }

// Envelope is a min/max reduction of a waveform, one Column per display
// column.
type Envelope []Column

func emptyColumn() Column { return Column{Min: 1, Max: -1} }

// Reduce folds samples into width columns. Each column covers
// ceil(len(samples)/width) consecutive samples; trailing columns past the
// end of the data stay empty.
func Reduce(samples []float32, width int) (Envelope, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	env := make(Envelope, 0, width)
	for _, col := range Columns(samples, width) {
		env = append(env, col)
	}

	return env, nil
}

// Columns yields the same columns as Reduce, lazily. It yields nothing for
// a non-positive width. The sequence can be ranged over more than once.
func Columns(samples []float32, width int) iter.Seq2[int, Column] {
	return func(yield func(int, Column) bool) {
		if width <= 0 {
			return
		}

		step := (len(samples) + width - 1) / width
		for i := range width {
			col := emptyColumn()

			start := i * step
			end := min(start+step, len(samples))
			for _, s := range samples[min(start, end):end] {
				col.Min = min(col.Min, s)
				col.Max = max(col.Max, s)
			}

			if !yield(i, col) {
				return
			}
		}
	}
}

// Bounds returns the overall minimum and maximum across non-empty columns.
// ok is false when every column is empty.
func (e Envelope) Bounds() (lo, hi float32, ok bool) {
	for _, c := range e {
		if c.Empty() {
			continue
		}
		if !ok {
			lo, hi, ok = c.Min, c.Max, true
			continue
		}
		lo = min(lo, c.Min)
		hi = max(hi, c.Max)
	}

	return lo, hi, ok
}
