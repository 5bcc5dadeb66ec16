// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"context"
	"fmt"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/internal/audiotest"
)

// Example_collect drains a stereo stream into a mono buffer.
func Example_collect() {
	src := audiotest.NewStereoSource(16000, 16000, 0.5, -0.1)

	buf, err := audio.Collect(context.Background(), src, 0, 4096)
	if err != nil {
		fmt.Println("collect:", err)
		return
	}

	fmt.Println(buf)
	fmt.Printf("first sample: %.2f\n", buf.Samples[0])
	// Output:
	// 16000 samples @ 16000 Hz (1.00s)
	// first sample: 0.20
}

// Example_collectResampled resamples while collecting.
func Example_collectResampled() {
	src := audiotest.NewSineSource(44100, 1, 44100, 440)

	buf, err := audio.Collect(context.Background(), src, 16000, 0)
	if err != nil {
		fmt.Println("collect:", err)
		return
	}

	fmt.Printf("%d Hz, %.2fs\n", buf.SampleRate, buf.Seconds())
	// Output: 16000 Hz, 1.00s
}

// Example_bufferSource replays a buffer through the stream adapters.
func Example_bufferSource() {
	b := &audio.Buffer{SampleRate: 8000, Samples: []float32{0, 0.5, 1, 0.5, 0}}
	mono := audio.NewMonoMixer(audio.NewBufferSource(b))

	dst := make([]float32, 8)
	n, _ := mono.ReadSamples(dst)
	fmt.Println(dst[:n])
	// Output: [0 0.5 1 0.5 0]
}
