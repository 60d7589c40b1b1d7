// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"

	"github.com/ik5/audmix/companding"
)

// Every kernel walks dst one sample at a time with a channel index that
// wraps at channels. A stream contributes only when its gain for the
// channel is positive, but its cursor moves on regardless.

// mulHiLo applies a Q16.16 gain to a 16-bit sample in 32-bit arithmetic by
// splitting the gain into its integer and fractional halves.
func mulHiLo(v, cv int32) int32 {
	hi := cv >> 16
	lo := cv & 0xFFFF
	return ((v * lo) >> 16) + v*hi
}

// mulWide applies a Q16.16 gain with a 64-bit product.
func mulWide(v int64, cv int32) int64 {
	return (v * int64(cv)) >> 16
}

func clamp16(v int32) int32 {
	return max(-0x8000, min(v, 0x7FFF))
}

func clamp32(v int64) int64 {
	return max(-0x80000000, min(v, 0x7FFFFFFF))
}

func mixU8(streams []StreamInput, channels int, dst []byte) {
	channel := 0

	for i := range dst {
		var sum int32

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.I[channel]; cv > 0 {
				v := int32(m.Data[0]) - 0x80
				sum += mulHiLo(v, cv)
			}
			m.Data = m.Data[1:]
		}

		sum = max(-0x80, min(sum, 0x7F))
		dst[i] = byte(sum + 0x80)

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

// mixCompanded mixes a G.711 stream in the 16-bit linear domain and drops
// the sum to the codec's segment depth before compressing.
func mixCompanded(c companding.Compander) Kernel {
	shift := c.Shift()

	return func(streams []StreamInput, channels int, dst []byte) {
		channel := 0

		for i := range dst {
			var sum int32

			for k := range streams {
				m := &streams[k]
				if cv := m.Linear.I[channel]; cv > 0 {
					v := int32(c.Expand(m.Data[0]))
					sum += mulHiLo(v, cv)
				}
				m.Data = m.Data[1:]
			}

			sum = clamp16(sum)
			dst[i] = c.Compress(int16(sum) >> shift)

			if channel++; channel >= channels {
				channel = 0
			}
		}
	}
}

func mixS16[O byteOrder](streams []StreamInput, channels int, dst []byte) {
	var o O
	channel := 0

	for len(dst) > 0 {
		var sum int32

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.I[channel]; cv > 0 {
				v := int32(int16(o.Uint16(m.Data)))
				sum += mulHiLo(v, cv)
			}
			m.Data = m.Data[2:]
		}

		o.PutUint16(dst, uint16(int16(clamp16(sum))))
		dst = dst[2:]

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func mixS32[O byteOrder](streams []StreamInput, channels int, dst []byte) {
	var o O
	channel := 0

	for len(dst) > 0 {
		var sum int64

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.I[channel]; cv > 0 {
				v := int64(int32(o.Uint32(m.Data)))
				sum += mulWide(v, cv)
			}
			m.Data = m.Data[4:]
		}

		o.PutUint32(dst, uint32(int32(clamp32(sum))))
		dst = dst[4:]

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

// mixS24 widens packed 24-bit samples to the top of an int32 so the clamp
// range is the 32-bit one, then drops the low byte on store.
func mixS24[O byteOrder](streams []StreamInput, channels int, dst []byte) {
	var o O
	channel := 0

	for len(dst) > 0 {
		var sum int64

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.I[channel]; cv > 0 {
				v := int64(int32(o.Uint24(m.Data) << 8))
				sum += mulWide(v, cv)
			}
			m.Data = m.Data[3:]
		}

		o.PutUint24(dst, uint32(clamp32(sum))>>8)
		dst = dst[3:]

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

// mixS24In32 treats the low 24 bits of a 32-bit container as the sample;
// the top byte of the output is zero.
func mixS24In32[O byteOrder](streams []StreamInput, channels int, dst []byte) {
	var o O
	channel := 0

	for len(dst) > 0 {
		var sum int64

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.I[channel]; cv > 0 {
				v := int64(int32(o.Uint32(m.Data) << 8))
				sum += mulWide(v, cv)
			}
			m.Data = m.Data[4:]
		}

		o.PutUint32(dst, uint32(int32(clamp32(sum)))>>8)
		dst = dst[4:]

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

// mixFloat32 does not clamp.
func mixFloat32[O byteOrder](streams []StreamInput, channels int, dst []byte) {
	var o O
	channel := 0

	for len(dst) > 0 {
		var sum float32

		for k := range streams {
			m := &streams[k]
			if cv := m.Linear.F[channel]; cv > 0 {
				v := math.Float32frombits(o.Uint32(m.Data))
				sum += float32(v * cv)
			}
			m.Data = m.Data[4:]
		}

		o.PutUint32(dst, math.Float32bits(sum))
		dst = dst[4:]

		if channel++; channel >= channels {
			channel = 0
		}
	}
}
