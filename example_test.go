// SPDX-License-Identifier: EPL-2.0

package echofx_test

import (
	"context"
	"fmt"

	"github.com/ik5/echofx"
	"github.com/ik5/echofx/dsp"
)

// Example processes the built-in test signal with the default echo.
func Example() {
	engine := echofx.New()
	defer engine.Close()

	ctx := context.Background()
	params := dsp.DefaultEchoParams()

	res, err := engine.Process(ctx, engine.Generate(), params)
	if err != nil {
		fmt.Println("process:", err)
		return
	}

	fmt.Println(res.Report())
	fmt.Println(echofx.OutputFileName(params))
	fmt.Println(len(engine.Encode(res.Output)))
	// Output:
	// ✓ Processed successfully
	// α = 0.50, Delay = 300ms
	// Input: 5.00s
	// Output: 7.00s
	// echo_alpha0.5_delay300ms.wav
	// 617444
}

// Example_submit runs processing on the worker pool.
func Example_submit() {
	engine := echofx.New(echofx.WithWorkers(2))
	defer engine.Close()

	ctx := context.Background()
	in := engine.Generate()

	job := engine.Submit(ctx, in, dsp.EchoParams{Alpha: 0.3, DelayMs: 120, TailSeconds: 0.5})
	res, err := job.Wait(ctx)
	if err != nil {
		fmt.Println("process:", err)
		return
	}

	fmt.Println(res.Output)
	// Output: 242550 samples @ 44100 Hz (5.50s)
}

// Example_envelope renders the output envelope as text.
func Example_envelope() {
	engine := echofx.New()
	defer engine.Close()

	res, err := engine.Process(context.Background(), engine.Generate(), dsp.DefaultEchoParams())
	if err != nil {
		fmt.Println("process:", err)
		return
	}

	env, err := engine.Envelope(res.Output, 8)
	if err != nil {
		fmt.Println("envelope:", err)
		return
	}

	fmt.Println(len(env), env[0].Empty())
	// Output: 8 false
}
