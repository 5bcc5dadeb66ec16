// SPDX-License-Identifier: EPL-2.0

package echofx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/echofx/analysis"
	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/dsp"
)

// Result is the outcome of Process.
type Result struct {
	Input  *audio.Buffer
	Output *audio.Buffer
	Params dsp.EchoParams
	// Normalized is true when the output peak exceeded the clip threshold
	// and was scaled by Gain.
	Normalized bool
	Gain       float32
	Elapsed    time.Duration
}

// Report summarizes a Result for display.
type Report struct {
	Alpha         float64
	DelayMs       float64
	InputSeconds  float64
	OutputSeconds float64
	Normalized    bool
	Gain          float32
	Input         analysis.Stats
	Output        analysis.Stats
	// DominantHz is the strongest input frequency, 0 when the input is too
	// short to analyse.
	DominantHz float64
	Elapsed    time.Duration
}

// Report measures the input and output buffers.
func (r *Result) Report() Report {
	rep := Report{
		Alpha:         r.Params.Alpha,
		DelayMs:       r.Params.DelayMs,
		InputSeconds:  r.Input.Seconds(),
		OutputSeconds: r.Output.Seconds(),
		Normalized:    r.Normalized,
		Gain:          r.Gain,
		Input:         analysis.Measure(r.Input),
		Output:        analysis.Measure(r.Output),
		Elapsed:       r.Elapsed,
	}

	if hz, err := analysis.DominantFrequency(r.Input, 0); err == nil {
		rep.DominantHz = hz
	}

	return rep
}

// String renders the short status block:
//
//	✓ Processed successfully
//	α = 0.50, Delay = 300ms
//	Input: 5.00s
//	Output: 7.00s
func (r Report) String() string {
	return fmt.Sprintf("✓ Processed successfully\nα = %.2f, Delay = %sms\nInput: %.2fs\nOutput: %.2fs",
		r.Alpha, strconv.FormatFloat(r.DelayMs, 'f', -1, 64), r.InputSeconds, r.OutputSeconds)
}

// Details renders the level measurements, one per line.
func (r Report) Details() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "input:  %s\n", r.Input)
	fmt.Fprintf(&sb, "output: %s\n", r.Output)
	if r.Normalized {
		fmt.Fprintf(&sb, "normalized: gain %.4f\n", r.Gain)
	}
	if r.DominantHz > 0 {
		fmt.Fprintf(&sb, "dominant input frequency: %.1f Hz\n", r.DominantHz)
	}
	fmt.Fprintf(&sb, "processed in %s", r.Elapsed.Round(time.Microsecond))

	return sb.String()
}
