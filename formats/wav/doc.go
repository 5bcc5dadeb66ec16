// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files.
//
// # Encoding
//
// Encode and Write produce a canonical 44-byte-header, mono, 16-bit PCM
// file:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     36 + 2*N
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     1 (channels)
//	24      4     sample rate
//	28      4     sample rate * 2
//	32      2     2 (block align)
//	34      2     16
//	36      4     "data"
//	40      4     2*N
//	44      2*N   samples, little-endian int16
//
// Samples are clamped to [-1, 1] and mapped asymmetrically: negative values
// are multiplied by 32768, non-negative values by 32767, and the result is
// truncated toward zero.
//
//	file, _ := os.Create("out.wav")
//	defer file.Close()
//	err := wav.Write(file, buf)
//
// # Decoding
//
// Decoder parses files through github.com/go-audio/wav, so extra chunks
// (LIST, JUNK, fact) are skipped. Integer PCM at 8, 16, 24 and 32 bits is
// supported, mono or multi-channel:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// 16-bit samples decode with the inverse of the encoder's scale, so a file
// written by Encode reads back within one quantization step.
package wav
