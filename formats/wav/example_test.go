// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/formats/wav"
)

func ExampleEncode() {
	data := wav.Encode(&audio.Buffer{SampleRate: 44100, Samples: []float32{1.0, -1.0, 0.0}})

	fmt.Println(len(data))
	fmt.Printf("% X\n", data[44:])
	// Output:
	// 50
	// FF 7F 00 80 00 00
}

func ExampleDecoder() {
	in := &audio.Buffer{SampleRate: 16000, Samples: []float32{0, 0.5, -0.5, 0.25}}

	src, err := wav.Decoder{}.Decode(bytes.NewReader(wav.Encode(in)))
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	defer src.Close()

	out, err := audio.Collect(context.Background(), src, 0, 0)
	if err != nil {
		fmt.Println("collect:", err)
		return
	}

	fmt.Println(out)
	fmt.Printf("%.3f\n", out.Samples)
	// Output:
	// 4 samples @ 16000 Hz (0.00s)
	// [0.000 0.500 -0.500 0.250]
}

func ExampleWrite() {
	var out bytes.Buffer
	if err := wav.Write(&out, audio.NewBuffer(8000, 8000)); err != nil {
		fmt.Println("write:", err)
		return
	}

	fmt.Println(out.Len())
	// Output: 16044
}
