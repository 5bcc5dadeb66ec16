// SPDX-License-Identifier: EPL-2.0

// Package echofx is an offline echo-effects engine for mono audio.
//
// An Engine takes a buffer (decoded from a file or synthesized), runs it
// through a recursive feedback delay, scales the result down if the echoes
// pushed it past full scale, and hands it back for display and export.
//
// # Quick Start
//
//	engine := echofx.New()
//	defer engine.Close()
//
//	in, err := engine.LoadFile(ctx, "voice.wav")
//	if err != nil {
//	    return err
//	}
//
//	res, err := engine.Process(ctx, in, dsp.EchoParams{Alpha: 0.5, DelayMs: 300, TailSeconds: 2})
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(res.Report())
//	err = engine.Save(echofx.OutputFileName(res.Params), res.Output)
//
// # Supported Formats
//
// LoadFile picks a decoder from the file extension:
//   - WAV, integer PCM at 8, 16, 24 and 32 bits (formats/wav)
//   - MP3 (formats/mp3)
//   - Ogg Vorbis (formats/vorbis)
//   - AIFF, 16-bit PCM (formats/aiff)
//
// Multi-channel input is averaged to mono. WithTargetRate resamples on
// load. Output is always mono 16-bit PCM WAV.
//
// # Background Processing
//
// Submit runs Process on a worker pool and returns a Job:
//
//	job := engine.Submit(ctx, in, params)
//	res, err := job.Wait(ctx)
//
// Cancelling the context passed to Submit aborts the echo loop within
// Config.CheckInterval samples.
//
// # Logging
//
// The engine logs through logrus at Debug (stage timings) and Warn (load
// and processing failures). Nothing is logged unless a logger is supplied
// with WithLogger.
//
// # Error Handling
//
// Load failures wrap ErrLoadFailed; parameter errors wrap
// dsp.ErrInvalidParameter:
//
//	if errors.Is(err, echofx.ErrLoadFailed) {
//	    // unreadable or unsupported input
//	}
package echofx
