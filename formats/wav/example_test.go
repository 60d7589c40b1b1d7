// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/sample"
)

// Example_roundTrip writes a short s16le clip and reads it back.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	spec := sample.Spec{Format: sample.S16LE, Rate: 8000, Channels: 1}
	w, err := wav.NewWriter(f, spec)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Two samples: +0.5 and -0.5 of full scale.
	if _, err := w.Write([]byte{0x00, 0x40, 0x00, 0xc0}); err != nil {
		fmt.Println(err)
		return
	}
	if err := w.Close(); err != nil {
		fmt.Println(err)
		return
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	source, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, 8)
	n, err := source.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d Hz, %d channel(s)\n", source.SampleRate(), source.Channels())
	fmt.Println(buf[:n])
	// Output:
	// 8000 Hz, 1 channel(s)
	// [0.5 -0.5]
}
