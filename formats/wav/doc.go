// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits and produces an
// audio.Source of float32 samples in [-1.0, 1.0]:
//
//	f, _ := os.Open("drums.wav")
//	source, err := wav.Decoder{}.Decode(f)
//
// Readers that cannot seek are buffered in memory first. An *os.File is
// read in place and must stay open while the source is read.
//
// Only format tag 1 (integer PCM) is accepted. IEEE float and extensible
// WAV files fail with ErrUnsupportedEncoding, other widths with
// ErrUnsupportedBitDepth and non-RIFF input with ErrNotWavFile. 8-bit WAV
// is unsigned and is re-centred around zero.
//
// # Writing
//
// Writer takes raw PCM in any sample.Format, the layout the mixer
// produces, and stores it as integer PCM of BitDepth(format) bits:
//
//	f, _ := os.Create("mix.wav")
//	w, err := wav.NewWriter(f, sample.Spec{Format: sample.S16LE, Rate: 44100, Channels: 2})
//	_, err = w.Write(pcm)
//	err = w.Close()
//
// The header is written on the first Write and its sizes are fixed up by
// Close, so the destination must be seekable. Write rejects data that is
// not a whole number of frames with ErrNotFrameAligned, and a Write after
// Close returns ErrClosed.
//
// # Stored Widths
//
//	U8                     8-bit
//	ALaw, ULaw, S16*       16-bit (companded data is expanded)
//	S24*, S24In32*         24-bit
//	S32*, Float32*         32-bit integer
//
// Float32 is converted to 32-bit integers since the encoder writes integer
// PCM only.
package wav
