// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/vorbis"
)

// ExampleDecoder_Decode registers the decoder under its usual extension
// and rejects data that is not an Ogg stream.
func ExampleDecoder_Decode() {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})

	dec, err := reg.ForPath("/music/song.ogg")
	if err != nil {
		fmt.Println(err)
		return
	}

	_, err = dec.Decode(bytes.NewReader([]byte("RIFF....WAVE")))
	fmt.Println(err != nil)
	// Output:
	// true
}
