// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio into an audio.Source.
//
// Decoding is done by github.com/hajimehoshi/go-mp3.
//
// # Decoding MP3 Files
//
//	f, err := os.Open("podcast.mp3")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The file must stay open while the source is read; frames are decoded on
// demand.
//
// # Output Format
//
// go-mp3 always produces interleaved 16-bit stereo, even for mono files,
// so the source reports two channels:
//   - Sample format: float32 in [-1.0, 1.0)
//   - Channels: 2
//   - Sample rate: taken from the first frame header
//
// To mix an MP3 with mono material, decode the other inputs as stereo or
// pick stereo sources; the mixer does not remap channels.
//
// # Reading
//
// ReadSamples only returns whole frames. When go-mp3 hands back a partial
// frame, the bytes are kept and completed on the next call. A dst with
// room for less than one frame returns audio.ErrInvalidDstSize.
//
// # Limitations
//
// Decoding only; there is no MP3 encoder. Close is a no-op, so closing
// the underlying reader is up to the caller.
package mp3
