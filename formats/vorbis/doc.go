// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an audio.Source.
//
// Decoding is done by github.com/jfreymuth/oggvorbis.
//
// # Decoding Vorbis Files
//
//	f, err := os.Open("ambience.ogg")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(src.SampleRate(), src.Channels())
//
// The identification header is parsed by Decode; audio packets are decoded
// lazily, so keep the reader open while reading samples.
//
// # Output Format
//
// Vorbis already decodes to float32, so ReadSamples hands the samples
// through unchanged, interleaved in the stream's channel order:
//   - Sample format: float32, nominally in [-1.0, 1.0]
//   - Channels: from the stream
//   - Sample rate: from the stream
//
// Lossy decoding can overshoot full scale slightly. The value is kept; the
// PCM encoder in package audio saturates it when converting to integers.
//
// # Reading
//
// oggvorbis counts interleaved values rather than frames. ReadSamples
// returns that count directly. A dst whose length is not a multiple of the
// channel count is trimmed to whole frames; a dst shorter than one frame
// returns audio.ErrInvalidDstSize.
//
// Decoding only; there is no Vorbis encoder.
package vorbis
