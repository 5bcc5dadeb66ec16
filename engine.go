// SPDX-License-Identifier: EPL-2.0

package echofx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
	"github.com/ik5/echofx/formats"
	"github.com/ik5/echofx/formats/wav"
)

// Engine owns the configuration, logger, decoder registry and worker pool
// of one processing session. Its methods are safe for concurrent use; each
// call works on its own buffers.
type Engine struct {
	cfg       Config
	log       logrus.FieldLogger
	registry  *audio.Registry
	generator *dsp.Generator
	create    func(path string) (io.WriteCloser, error)

	mtx     sync.RWMutex
	closed  bool
	started bool
	jobs    chan *Job
	wg      sync.WaitGroup
}

// New creates an engine. Workers start on the first Submit.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:       DefaultConfig(),
		log:       discardLogger(),
		registry:  formats.Registry(),
		generator: dsp.NewGenerator(),
		create:    createFile,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Config returns the effective settings.
func (e *Engine) Config() Config { return e.cfg }

// Registry returns the decoder registry used by Load.
func (e *Engine) Registry() *audio.Registry { return e.registry }

// Generate returns the synthetic test signal.
func (e *Engine) Generate() *audio.Buffer {
	b := e.generator.Generate()

	e.log.WithFields(logrus.Fields{
		"function":    "Engine.Generate",
		"samples":     b.Len(),
		"sample_rate": b.SampleRate,
	}).Debug("Generated test signal")

	return b
}

// Load decodes r with the decoder registered for format, downmixes it to
// mono and resamples it when a target rate is configured. Every failure
// wraps ErrLoadFailed.
func (e *Engine) Load(ctx context.Context, r io.Reader, format string) (*audio.Buffer, error) {
	start := time.Now()
	log := e.log.WithFields(logrus.Fields{
		"function": "Engine.Load",
		"format":   format,
	})

	dec, err := formats.Lookup(e.registry, format)
	if err != nil {
		return nil, e.loadFailed(log, err)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, e.loadFailed(log, fmt.Errorf("decoding: %w", err))
	}
	defer src.Close()

	channels := src.Channels()
	buf, err := audio.Collect(ctx, src, e.cfg.TargetRate, e.cfg.ReadBufferSize)
	if err != nil {
		return nil, e.loadFailed(log, err)
	}
	if err := buf.Validate(); err != nil {
		return nil, e.loadFailed(log, err)
	}

	log.WithFields(logrus.Fields{
		"channels":    channels,
		"samples":     buf.Len(),
		"sample_rate": buf.SampleRate,
		"elapsed":     time.Since(start),
	}).Debug("Loaded input")

	return buf, nil
}

// LoadFile opens path and loads it with the decoder matching its
// extension.
func (e *Engine) LoadFile(ctx context.Context, path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, e.loadFailed(e.log.WithField("file", path), err)
	}
	defer f.Close()

	return e.Load(ctx, f, filepath.Ext(path))
}

func (e *Engine) loadFailed(log logrus.FieldLogger, err error) error {
	log.WithError(err).Warn("Load failed")

	return fmt.Errorf("%w: %w", ErrLoadFailed, err)
}

// Process applies the echo and then the normalizer to in. in is not
// modified.
func (e *Engine) Process(ctx context.Context, in *audio.Buffer, p dsp.EchoParams) (*Result, error) {
	start := time.Now()

	echoed, err := dsp.Echo(ctx, in, p, dsp.WithCheckInterval(e.cfg.CheckInterval))
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"function": "Engine.Process",
			"params":   p.String(),
		}).WithError(err).Warn("Echo failed")

		return nil, fmt.Errorf("applying echo: %w", err)
	}

	out, gain := dsp.NormalizeTo(echoed, e.cfg.TargetPeak, e.cfg.ClipThreshold)
	res := &Result{
		Input:      in,
		Output:     out,
		Params:     p,
		Normalized: dsp.Exceeds(dsp.Peak(echoed.Samples), e.cfg.ClipThreshold),
		Gain:       gain,
		Elapsed:    time.Since(start),
	}

	e.log.WithFields(logrus.Fields{
		"function":      "Engine.Process",
		"samples":       in.Len(),
		"sample_rate":   in.SampleRate,
		"alpha":         p.Alpha,
		"delay_samples": p.DelaySamples(in.SampleRate),
		"tail_samples":  p.TailSamples(in.SampleRate),
		"gain":          gain,
		"elapsed":       res.Elapsed,
	}).Debug("Processed buffer")

	return res, nil
}

// Envelope reduces b to width min/max columns for display.
func (e *Engine) Envelope(b *audio.Buffer, width int) (dsp.Envelope, error) {
	return dsp.Reduce(b.Samples, width)
}

// Encode serializes b as a mono 16-bit PCM WAV file.
func (e *Engine) Encode(b *audio.Buffer) []byte {
	return wav.Encode(b)
}

// Save writes b to path as a WAV file, replacing any existing file. A
// failed write removes the partial file.
func (e *Engine) Save(path string, b *audio.Buffer) (err error) {
	f, err := e.create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
				e.log.WithFields(logrus.Fields{
					"function": "Engine.Save",
					"file":     path,
				}).WithError(rerr).Warn("Removing partial output failed")
			}
		}
	}()

	if err := wav.Write(f, b); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	e.log.WithFields(logrus.Fields{
		"function": "Engine.Save",
		"file":     path,
		"bytes":    wav.HeaderSize + 2*b.Len(),
	}).Debug("Saved output")

	return nil
}

// OutputFileName suggests a file name for a result processed with p, for
// example "echo_alpha0.5_delay300ms.wav".
func OutputFileName(p dsp.EchoParams) string {
	return fmt.Sprintf("echo_alpha%.1f_delay%sms.wav",
		p.Alpha, strconv.FormatFloat(p.DelayMs, 'f', -1, 64))
}
