// SPDX-License-Identifier: EPL-2.0

// Package volume models per-channel software volume and turns it into the
// linear gains the mixing kernels consume.
//
// # Volume Levels
//
// A Volume is logarithmic. Muted (0) silences and Norm (0x10000) leaves a
// signal untouched. Levels above Norm amplify, up to Max:
//
//	v := volume.New(2, volume.Norm)       // stereo at unity
//	v.Values[1] = volume.Norm / 2         // right channel quieter
//	fmt.Println(v.String())               // 0: 100% 1: 50%
//
// ChannelVolume carries one level per channel, up to sample.ChannelsMax.
// Only the first Channels values take part in comparisons such as IsMuted
// and IsNorm.
//
// # Curves
//
// A Curve maps a Volume to a linear amplitude ratio. The default,
// SoftwareToLinear, is cubic: Norm maps to 1.0, Norm/2 to 0.125 and
// Norm*2 to 8.0. SoftwareFromLinear inverts it, and ToDecibel and
// FromDecibel convert to and from dB. Callers that want a different
// response pass their own Curve to the mixer.
//
// # Linear Scratch
//
// Linear is the vector handed to the kernels. It holds ChannelsMax real
// slots plus Padding extra slots, in fixed point (I) or float (F):
//
//	var l volume.Linear
//	l.Set(&v, volume.SoftwareToLinear, volume.Fixed)
//
// Fixed point is Q16.16 rounded half to even, so unity is 0x10000. A ratio
// too large for int32 saturates at math.MaxInt32 and the kernels clamp the
// result to full scale.
//
// After the real channels are converted, the padding is tiled from the
// start of the vector:
//
//	slot[n+i] = slot[i]   for i in [0, Padding)
//
// so for a stereo volume {L, R} the vector reads L R L R L R ... This lets
// a fixed-width reader run past the last channel and still see defined
// gains.
package volume
