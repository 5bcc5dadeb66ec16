// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding goes through github.com/go-audio/aiff. Only 16-bit PCM is
// accepted; channel count and sample rate come from the COMM chunk:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, aiff.ErrNotAiffFile):
//	    // not FORM/AIFF
//	case errors.Is(err, aiff.ErrOnlyPCM16bitSupported):
//	    // 8, 24 or 32-bit file
//	}
//
// Samples are big-endian in the file and come out of the source as
// interleaved float32 using the same 16-bit scale as package wav.
//
// Decoding needs random access. A plain io.Reader is buffered in memory
// before parsing, so pass an *os.File for large inputs.
package aiff
