// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples pass through without
// conversion. The stream keeps its channel count; use audio.Collect to
// downmix:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if errors.Is(err, vorbis.ErrNotVorbisFile) {
//	    // missing identification header
//	}
//	buf, err := audio.Collect(ctx, src, 0, 0)
//
// ReadSamples only requests whole frames from the decoder; a destination
// shorter than one frame reads nothing.
package vorbis
