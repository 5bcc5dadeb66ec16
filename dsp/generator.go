// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/ik5/echofx/audio"
)

const (
	defaultGeneratorRate     = 44100
	defaultGeneratorDuration = 5.0
	defaultChirpStart        = 200.0
	defaultChirpEnd          = 2000.0
	defaultChirpAmplitude    = 0.3
	defaultBurstAmplitude    = 0.4
	defaultGeneratorPeak     = 0.8

	burstFirst  = 0.5
	burstStep   = 1.5
	burstLimit  = 4.5
	burstLength = 0.3
	burstBase   = 400.0
	burstSlope  = 200.0
)

// GeneratorConfig holds the parameters of the test signal.
type GeneratorConfig struct {
	core.ProcessorConfig

	Duration       float64 // seconds
	ChirpStart     float64 // Hz
	ChirpEnd       float64 // Hz
	ChirpAmplitude float64
	BurstAmplitude float64
	TargetPeak     float64
}

// GeneratorOption mutates a GeneratorConfig.
type GeneratorOption func(*GeneratorConfig)

// WithSampleRate sets the output sample rate. Non-positive rates are ignored.
func WithSampleRate(rate int) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		core.WithSampleRate(float64(rate))(&cfg.ProcessorConfig)
	}
}

// WithDuration sets the signal length in seconds. Non-positive values are
// ignored.
func WithDuration(seconds float64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		if seconds > 0 && finite(seconds) {
			cfg.Duration = seconds
		}
	}
}

// WithChirp sets the sweep range and amplitude.
func WithChirp(startHz, endHz, amplitude float64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		if !finite(startHz) || !finite(endHz) || !finite(amplitude) {
			return
		}
		cfg.ChirpStart = startHz
		cfg.ChirpEnd = endHz
		cfg.ChirpAmplitude = amplitude
	}
}

// WithBurstAmplitude sets the peak amplitude of the tone bursts.
func WithBurstAmplitude(amplitude float64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		if finite(amplitude) {
			cfg.BurstAmplitude = amplitude
		}
	}
}

// WithTargetPeak sets the absolute peak the signal is normalized to.
// Non-positive values are ignored.
func WithTargetPeak(peak float64) GeneratorOption {
	return func(cfg *GeneratorConfig) {
		if peak > 0 && finite(peak) {
			cfg.TargetPeak = peak
		}
	}
}

// DefaultGeneratorConfig returns the 5 s, 44.1 kHz chirp-plus-bursts signal.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ProcessorConfig: core.ProcessorConfig{
			SampleRate: defaultGeneratorRate,
			BlockSize:  core.DefaultProcessorConfig().BlockSize,
		},
		Duration:       defaultGeneratorDuration,
		ChirpStart:     defaultChirpStart,
		ChirpEnd:       defaultChirpEnd,
		ChirpAmplitude: defaultChirpAmplitude,
		BurstAmplitude: defaultBurstAmplitude,
		TargetPeak:     defaultGeneratorPeak,
	}
}

// Generator synthesizes a deterministic test signal: a linear chirp with
// half-sine tone bursts at 0.5 s, 2.0 s and 3.5 s.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator applies opts over DefaultGeneratorConfig.
func NewGenerator(opts ...GeneratorOption) *Generator {
	cfg := DefaultGeneratorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Generator{cfg: cfg}
}

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// Generate returns the test signal with the default configuration.
func Generate() *audio.Buffer {
	return NewGenerator().Generate()
}

// Generate synthesizes the signal. Arithmetic is float64; each stage
// accumulates into the float32 buffer.
func (g *Generator) Generate() *audio.Buffer {
	fs := g.cfg.SampleRate
	length := int(g.cfg.Duration * fs)
	out := audio.NewBuffer(int(fs), length)
	sig := out.Samples

	beta := (g.cfg.ChirpEnd - g.cfg.ChirpStart) / g.cfg.Duration
	for i := range sig {
		t := float64(i) / fs
		phase := 2 * math.Pi * (g.cfg.ChirpStart*t + 0.5*beta*t*t)
		sig[i] = float32(g.cfg.ChirpAmplitude * math.Sin(phase))
	}

	for bt := burstFirst; bt < burstLimit; bt += burstStep {
		start := int(math.Floor(bt * fs))
		end := min(start+int(math.Floor(burstLength*fs)), length)
		freq := burstBase + burstSlope*(bt/defaultGeneratorDuration)

		for i := start; i < end; i++ {
			tau := float64(i-start) / fs
			env := math.Sin(math.Pi * tau / burstLength)
			sig[i] = float32(float64(sig[i]) + g.cfg.BurstAmplitude*env*math.Sin(2*math.Pi*freq*tau))
		}
	}

	peak := float64(Peak(sig))
	if peak > 0 {
		for i, s := range sig {
			sig[i] = float32(float64(s) / peak * g.cfg.TargetPeak)
		}
	}

	return out
}
