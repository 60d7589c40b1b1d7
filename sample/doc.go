// SPDX-License-Identifier: EPL-2.0

// Package sample describes the raw PCM encodings the mixer understands.
//
// A Format is a closed set of tags: unsigned 8-bit, the two G.711 companded
// encodings, signed 16, 24 (packed), 24-in-32 and 32-bit integers in both byte
// orders, and 32-bit float in both byte orders.
//
// The NE ("native endian") and RE ("reversed endian") aliases such as S16NE
// and S16RE are resolved exactly once, when the package is initialised, from
// the byte order of the running machine:
//
//	if sample.S16NE == sample.S16LE {
//	    // little endian host
//	}
//
// A Spec couples a Format with a sample rate and channel count and answers
// frame-size questions:
//
//	spec := sample.Spec{Format: sample.S16LE, Rate: 48000, Channels: 2}
//	spec.FrameSize()       // 4
//	spec.FrameAligned(6)   // false
//
// # Silence
//
// Digital silence is all zero bytes for signed and float encodings, 0x80 for
// unsigned 8-bit, 0xd5 for A-law and 0xff for u-law. FillSilence writes that
// pattern.
package sample
