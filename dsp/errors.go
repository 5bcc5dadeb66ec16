// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	// ErrInvalidParameter is returned when echo parameters are negative or
	// not finite.
	ErrInvalidParameter = errors.New("invalid echo parameter")
	// ErrInvalidWidth is returned when a waveform is reduced to fewer than
	// one column.
	ErrInvalidWidth = errors.New("width must be positive")
)
