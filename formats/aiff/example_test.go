// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ik5/echofx/audio"
	"github.com/ik5/echofx/formats/aiff"
	"github.com/ik5/echofx/formats/wav"
)

// ExampleDecoder_Decode converts an AIFF file to a mono WAV.
func ExampleDecoder_Decode() {
	in, err := os.Open("input.aiff")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	src, err := aiff.Decoder{}.Decode(in)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf, err := audio.Collect(context.Background(), src, 0, 0)
	if err != nil {
		log.Fatal(err)
	}

	out, err := os.Create("output.wav")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := wav.Write(out, buf); err != nil {
		log.Fatal(err)
	}

	fmt.Println("converted", buf)
}
