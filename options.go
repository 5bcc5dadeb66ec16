// SPDX-License-Identifier: EPL-2.0

package echofx

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

// Config holds the engine settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// TargetRate resamples loaded audio; 0 keeps the decoded rate.
	TargetRate int
	// TargetPeak and ClipThreshold drive the normalizer.
	TargetPeak    float32
	ClipThreshold float32
	// CheckInterval is the number of samples between cancellation checks.
	CheckInterval int
	// Workers is the number of goroutines serving Submit.
	Workers int
	// QueueSize is the number of submitted jobs that may wait for a worker.
	QueueSize int
	// ReadBufferSize is the decoder read size in frames; 0 lets the
	// decoder choose.
	ReadBufferSize int
}

// DefaultConfig returns the settings New starts from.
func DefaultConfig() Config {
	return Config{
		TargetPeak:    dsp.DefaultTargetPeak,
		ClipThreshold: dsp.DefaultClipThreshold,
		CheckInterval: dsp.DefaultCheckInterval,
		Workers:       1,
		QueueSize:     16,
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithTargetRate resamples every loaded input to rate. 0 disables
// resampling.
func WithTargetRate(rate int) Option {
	return func(e *Engine) {
		if rate >= 0 {
			e.cfg.TargetRate = rate
		}
	}
}

// WithNormalization sets the normalizer's target peak and the peak above
// which it engages. Non-positive values are ignored.
func WithNormalization(targetPeak, threshold float32) Option {
	return func(e *Engine) {
		if targetPeak > 0 && threshold > 0 {
			e.cfg.TargetPeak = targetPeak
			e.cfg.ClipThreshold = threshold
		}
	}
}

// WithCheckInterval sets how often long computations poll their context.
func WithCheckInterval(samples int) Option {
	return func(e *Engine) {
		if samples > 0 {
			e.cfg.CheckInterval = samples
		}
	}
}

// WithWorkers sets the size of the Submit worker pool.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.Workers = n
		}
	}
}

// WithQueueSize sets how many submitted jobs may wait for a worker before
// Submit blocks.
func WithQueueSize(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.cfg.QueueSize = n
		}
	}
}

// WithRegistry replaces the built-in decoder registry.
func WithRegistry(r *audio.Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithReadBufferSize sets the decoder read size in frames.
func WithReadBufferSize(frames int) Option {
	return func(e *Engine) {
		if frames >= 0 {
			e.cfg.ReadBufferSize = frames
		}
	}
}

// WithGeneratorOptions configures the test signal returned by Generate.
func WithGeneratorOptions(opts ...dsp.GeneratorOption) Option {
	return func(e *Engine) {
		e.generator = dsp.NewGenerator(opts...)
	}
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
