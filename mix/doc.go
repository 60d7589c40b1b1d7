// SPDX-License-Identifier: EPL-2.0

// Package mix sums several streams of identically formatted PCM into one
// output buffer and scales single buffers in place.
//
// # Mixing
//
// A Mix call takes a list of StreamInput values, each holding a Buffer of
// samples already in the target format and the stream's own per-channel
// volume, plus an optional output volume shared by all streams:
//
//	streams := []mix.StreamInput{
//	    {Buffer: voice, Volume: volume.Unity(2)},
//	    {Buffer: music, Volume: volume.New(2, volume.Norm/2)},
//	}
//	spec := sample.Spec{Format: sample.S16NE, Rate: 48000, Channels: 2}
//	n := mix.Mix(streams, dst, spec, nil, false)
//
// The returned length is the shortest stream buffer, capped at len(dst)
// and aligned down to a whole frame. Only dst[:n] is written. A muted call,
// a muted output volume or an empty stream list fills all of dst with the
// silence pattern of the format and returns len(dst) without acquiring any
// buffer.
//
// # Gains
//
// Before any sample is read, every stream volume is taken through the
// volume Curve, multiplied by the output volume and stored once per
// channel in the stream's Linear scratch. Integer formats use Q16.16 fixed
// point, where 0x10000 is unity:
//
//	0x10000  unity
//	0x08000  half amplitude
//	0x00000  the stream is skipped on that channel
//
// The 8 and 16-bit kernels, including A-law and u-law after expansion,
// apply a gain in 32-bit arithmetic by splitting it into its integer and
// fractional halves:
//
//	(v*(gain&0xFFFF))>>16 + v*(gain>>16)
//
// The 24 and 32-bit kernels use a 64-bit product (v*gain)>>16 instead.
// Results clamp to the range of the format. Float32 gains are plain
// float32 factors and float results are not clamped.
//
// A stream whose gain is zero on a channel does not contribute to that
// channel, but its read cursor still advances so the following samples
// stay aligned.
//
// # Volume
//
// ApplyVolume scales one buffer in place with the same arithmetic. A
// buffer that reports silence through SilenceReporter, or a unity volume,
// is left untouched; a muted volume rewrites the buffer as silence.
//
// # Kernels and Tables
//
// Each format has a mix kernel, a volume kernel and a gain representation
// in a Table. Native and reversed byte order aliases are bound once when
// the table is built. Kernels may be replaced, for instance with a
// vectorized version:
//
//	mix.SetMixKernel(sample.S16NE, mySIMDKernel)
//
// A replacement must advance every stream by exactly len(dst) bytes and
// keep the rounding and clamping of the built in kernel. Tables are not
// locked; replace kernels before mixing starts.
//
// # Errors
//
// Mix and ApplyVolume have no error return. Broken preconditions, such as
// an empty or unaligned dst, an invalid spec, a volume whose channel count
// does not match the spec or a nil Buffer, panic with an error wrapping one
// of the sentinels in this package:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, mix.ErrChannelMismatch) {
//	        // a volume was built for a different layout
//	    }
//	}()
//
// Every acquired Buffer is released before Mix returns or panics.
package mix
