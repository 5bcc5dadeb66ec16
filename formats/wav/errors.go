// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile is returned when the input lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")
	// ErrUnsupportedFormat is returned for non-PCM encodings and bit depths
	// other than 8, 16, 24 and 32.
	ErrUnsupportedFormat = errors.New("unsupported WAV format")
)
