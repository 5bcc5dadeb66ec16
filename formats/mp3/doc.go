// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM, even for mono
// files, so the source reports two channels; audio.Collect or
// audio.MonoMixer folds them back to mono:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMP3File) {
//	    // no decodable frame
//	}
//	buf, err := audio.Collect(ctx, src, 0, 0)
//
// Samples use the same 16-bit scale as package wav. The decoder streams
// from r and never seeks.
package mp3
