// SPDX-License-Identifier: EPL-2.0

// Command echofx applies a feedback echo to an audio file, or to a built-in
// test signal, and writes the result as a mono 16-bit WAV.
//
// Usage:
//
//	echofx                                   # process the test signal
//	echofx -in voice.mp3 -alpha 0.7 -delay 250
//	echofx -in song.ogg -out song_echo.wav -tail 3 -rate 22050
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"

	"github.com/ik5/echofx"
	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

const (
	defaultWidth  = 100
	defaultHeight = 10
)

type options struct {
	in       string
	out      string
	outDir   string
	params   dsp.EchoParams
	width    int
	height   int
	rate     int
	timeout  time.Duration
	logLevel string
	logJSON  bool
	details  bool
}

func parseFlags() options {
	def := dsp.DefaultEchoParams()

	var o options
	flag.StringVar(&o.in, "in", "", "Input audio file (wav, mp3, ogg, aiff); empty uses the test signal")
	flag.StringVar(&o.out, "out", "", "Output WAV path; empty derives it from the echo parameters")
	flag.StringVar(&o.outDir, "outdir", ".", "Directory for the derived output name")
	flag.Float64Var(&o.params.Alpha, "alpha", def.Alpha, "Feedback gain")
	flag.Float64Var(&o.params.DelayMs, "delay", def.DelayMs, "Echo delay in milliseconds")
	flag.Float64Var(&o.params.TailSeconds, "tail", def.TailSeconds, "Silence appended for the echo tail, in seconds")
	flag.IntVar(&o.width, "width", defaultWidth, "Waveform columns")
	flag.IntVar(&o.height, "height", defaultHeight, "Waveform rows; 0 disables the plot")
	flag.IntVar(&o.rate, "rate", 0, "Resample the input to this rate in Hz; 0 keeps it")
	flag.DurationVar(&o.timeout, "timeout", 0, "Abort processing after this long; 0 waits forever")
	flag.StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&o.logJSON, "log-json", false, "Log as JSON")
	flag.BoolVar(&o.details, "v", false, "Print level measurements")
	flag.Parse()

	return o
}

func newLogger(level string, json bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log, nil
}

func main() {
	o := parseFlags()

	log, err := newLogger(o.logLevel, o.logJSON)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(o, log); err != nil {
		log.WithError(err).Error("Failed")
		os.Exit(1)
	}
}

// expandPaths resolves a leading ~ in the path flags.
func (o *options) expandPaths() error {
	for _, p := range []*string{&o.in, &o.out, &o.outDir} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %q: %w", *p, err)
		}
		*p = expanded
	}

	return nil
}

func run(o options, log *logrus.Logger) error {
	if err := o.params.Validate(); err != nil {
		return err
	}
	if o.height > 0 && o.width <= 0 {
		return fmt.Errorf("%w: %d", dsp.ErrInvalidWidth, o.width)
	}
	if err := o.expandPaths(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	engine := echofx.New(echofx.WithLogger(log), echofx.WithTargetRate(o.rate))
	defer engine.Close()

	in, err := loadInput(ctx, engine, o.in)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"input": in.String(), "params": o.params.String()}).Info("Processing")

	res, err := engine.Submit(ctx, in, o.params).Wait(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("processing took longer than %s: %w", o.timeout, err)
		}
		return err
	}

	report := res.Report()
	fmt.Println(report)
	if o.details {
		fmt.Println(report.Details())
	}

	if o.height > 0 {
		env, err := engine.Envelope(res.Output, o.width)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(renderEnvelope(env, o.height))
	}

	out := o.out
	if out == "" {
		out = filepath.Join(o.outDir, echofx.OutputFileName(o.params))
	}
	if err := engine.Save(out, res.Output); err != nil {
		return err
	}

	fmt.Println("Wrote:", out)

	return nil
}

func loadInput(ctx context.Context, engine *echofx.Engine, path string) (*audio.Buffer, error) {
	if path == "" {
		return engine.Generate(), nil
	}

	return engine.LoadFile(ctx, path)
}
