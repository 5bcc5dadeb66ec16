// SPDX-License-Identifier: EPL-2.0

// Package audio provides the buffer type and streaming plumbing that sit
// between format decoders and the DSP stages.
//
// # Buffers
//
// Buffer is a complete mono block of float32 samples with a sample rate.
// Every DSP stage takes a *Buffer and returns a new one:
//
//	b := audio.NewBuffer(44100, 44100)
//	fmt.Println(b.Duration()) // 1s
//
// # Sources
//
// Decoders produce a Source, an interleaved float32 stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources chain: Resampler changes the rate with cubic interpolation,
// MonoMixer averages channels, BufferSource replays a Buffer.
//
// # Collecting
//
// Collect drains any Source into a mono Buffer, optionally resampling:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.Collect(ctx, src, 0, 4096)
//
// # Registry
//
// Registry maps format keys to decoders, case-insensitively:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(".WAV")
//
// # Sample Format
//
// Samples are float32 nominally in [-1.0, 1.0]. Values outside that range
// are legal inside the pipeline (echo feedback can exceed unity) and are
// clipped only when encoding to PCM.
//
// # Error Handling
//
// ReadSamples returns io.EOF once the stream is exhausted; a final read may
// return data together with io.EOF:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
