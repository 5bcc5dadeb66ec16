// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrEmptyBuffer       = errors.New("buffer has no samples")
	ErrNoChannels        = errors.New("source reports no channels")
)
