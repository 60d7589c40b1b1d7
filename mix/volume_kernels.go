// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"math"

	"github.com/ik5/audmix/companding"
	"github.com/ik5/audmix/volume"
)

// In-place single buffer versions of the mixing kernels: one input, no
// accumulation. Gains are applied with a 64-bit product throughout.

func volumeU8(data []byte, linear *volume.Linear, channels int) {
	channel := 0

	for i, b := range data {
		t := mulWide(int64(b)-0x80, linear.I[channel])
		t = max(-0x80, min(t, 0x7F))
		data[i] = byte(t + 0x80)

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func volumeCompanded(c companding.Compander) VolumeKernel {
	shift := c.Shift()

	return func(data []byte, linear *volume.Linear, channels int) {
		channel := 0

		for i, b := range data {
			t := mulWide(int64(c.Expand(b)), linear.I[channel])
			t = max(-0x8000, min(t, 0x7FFF))
			data[i] = c.Compress(int16(t) >> shift)

			if channel++; channel >= channels {
				channel = 0
			}
		}
	}
}

func volumeS16[O byteOrder](data []byte, linear *volume.Linear, channels int) {
	var o O
	channel := 0

	for ; len(data) > 0; data = data[2:] {
		t := mulWide(int64(int16(o.Uint16(data))), linear.I[channel])
		t = max(-0x8000, min(t, 0x7FFF))
		o.PutUint16(data, uint16(int16(t)))

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func volumeS32[O byteOrder](data []byte, linear *volume.Linear, channels int) {
	var o O
	channel := 0

	for ; len(data) > 0; data = data[4:] {
		t := mulWide(int64(int32(o.Uint32(data))), linear.I[channel])
		o.PutUint32(data, uint32(int32(clamp32(t))))

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func volumeS24[O byteOrder](data []byte, linear *volume.Linear, channels int) {
	var o O
	channel := 0

	for ; len(data) > 0; data = data[3:] {
		t := mulWide(int64(int32(o.Uint24(data)<<8)), linear.I[channel])
		o.PutUint24(data, uint32(int32(clamp32(t)))>>8)

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func volumeS24In32[O byteOrder](data []byte, linear *volume.Linear, channels int) {
	var o O
	channel := 0

	for ; len(data) > 0; data = data[4:] {
		t := mulWide(int64(int32(o.Uint32(data)<<8)), linear.I[channel])
		o.PutUint32(data, uint32(int32(clamp32(t)))>>8)

		if channel++; channel >= channels {
			channel = 0
		}
	}
}

func volumeFloat32[O byteOrder](data []byte, linear *volume.Linear, channels int) {
	var o O
	channel := 0

	for ; len(data) > 0; data = data[4:] {
		v := math.Float32frombits(o.Uint32(data))
		o.PutUint32(data, math.Float32bits(v*linear.F[channel]))

		if channel++; channel >= channels {
			channel = 0
		}
	}
}
