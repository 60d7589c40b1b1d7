// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files into an audio.Source.
//
// Parsing is done by github.com/go-audio/aiff.
//
// # Decoding AIFF Files
//
//	f, err := os.Open("take1.aif")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	src, err := aiff.Decoder{}.Decode(f)
//	switch {
//	case errors.Is(err, aiff.ErrUnsupportedBitDepth):
//	    // AIFF-C or an odd width
//	case err != nil:
//	    return err
//	}
//
// go-audio needs to seek, so a reader that is not an io.ReadSeeker is read
// into memory first. An *os.File is used in place and must stay open
// while the source is read.
//
// # Output Format
//
// AIFF stores signed big endian PCM. The decoder accepts 8, 16, 24 and 32
// bits and converts every width to float32 in [-1.0, 1.0). Channel count
// and rate come from the COMM chunk.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: a sample width other than 8, 16, 24 or 32
//   - ErrUnsupportedAiffLayout: no channels or no sample rate
//
// # AIFF vs. WAV
//
// AIFF is the big endian sibling of WAV and stores its sample rate as an
// 80-bit float. Both are uncompressed PCM, so an AIFF input mixes exactly
// like a WAV input of the same width. Writing AIFF is not supported; see
// package wav for an output container.
package aiff
