// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"math"

	"github.com/ik5/audmix/companding"
	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/utils"
)

func orderOf(f sample.Format) binary.ByteOrder {
	if f.IsLittleEndian() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Encode writes src into dst as samples of format f and returns the number
// of bytes written. It stops at whichever of src or dst runs out first.
func Encode(dst []byte, src []float32, f sample.Format) int {
	size := f.SampleSize()
	if size == 0 {
		return 0
	}

	n := min(len(src), len(dst)/size)
	order := orderOf(f)

	switch f {
	case sample.U8:
		for i, x := range src[:n] {
			dst[i] = utils.Float32ToUint8(x)
		}

	case sample.ALaw:
		for i, x := range src[:n] {
			dst[i] = companding.Encode16(companding.ALaw{}, utils.Float32ToInt16(x))
		}

	case sample.ULaw:
		for i, x := range src[:n] {
			dst[i] = companding.Encode16(companding.ULaw{}, utils.Float32ToInt16(x))
		}

	case sample.S16LE, sample.S16BE:
		for i, x := range src[:n] {
			order.PutUint16(dst[2*i:], uint16(utils.Float32ToInt16(x)))
		}

	case sample.S32LE, sample.S32BE:
		for i, x := range src[:n] {
			order.PutUint32(dst[4*i:], uint32(utils.Float32ToInt32(x)))
		}

	case sample.S24LE:
		for i, x := range src[:n] {
			v := utils.Float32ToInt24(x)
			dst[3*i], dst[3*i+1], dst[3*i+2] = byte(v), byte(v>>8), byte(v>>16)
		}

	case sample.S24BE:
		for i, x := range src[:n] {
			v := utils.Float32ToInt24(x)
			dst[3*i], dst[3*i+1], dst[3*i+2] = byte(v>>16), byte(v>>8), byte(v)
		}

	case sample.S24In32LE, sample.S24In32BE:
		for i, x := range src[:n] {
			order.PutUint32(dst[4*i:], uint32(utils.Float32ToInt24(x))&0x00FFFFFF)
		}

	case sample.Float32LE, sample.Float32BE:
		for i, x := range src[:n] {
			order.PutUint32(dst[4*i:], math.Float32bits(x))
		}
	}

	return n * size
}
