// SPDX-License-Identifier: EPL-2.0

package companding

import (
	"math"

	"github.com/zaf/g711"
)

// Compander converts between an 8-bit companded code and linear PCM.
//
// Expand returns a 16-bit linear sample. Compress takes a linear sample
// already reduced to the codec's segment depth (Shift bits below 16).
type Compander interface {
	Expand(code byte) int16
	Compress(linear int16) byte
	Shift() uint
}

// ALaw is G.711 A-law with a 13-bit linear segment depth.
type ALaw struct{}

// ULaw is G.711 u-law with a 14-bit linear segment depth.
type ULaw struct{}

var (
	_ Compander = ALaw{}
	_ Compander = ULaw{}
)

func (ALaw) Expand(code byte) int16 { return g711.DecodeAlawFrame(code) }
func (ALaw) Shift() uint            { return 3 }

// Compress encodes a 13-bit linear value.
func (ALaw) Compress(linear int16) byte {
	return g711.EncodeAlawFrame(widen(linear, 3))
}

func (ULaw) Expand(code byte) int16 { return g711.DecodeUlawFrame(code) }
func (ULaw) Shift() uint            { return 2 }

// Compress encodes a 14-bit linear value.
func (ULaw) Compress(linear int16) byte {
	return g711.EncodeUlawFrame(widen(linear, 2))
}

// widen scales a segment-depth value back to 16 bits. The encoders negate
// negative input, so the most negative 16-bit value is folded onto its
// neighbour, which lands in the same code.
func widen(linear int16, shift uint) int16 {
	v := int32(linear) << shift
	if v <= math.MinInt16 {
		return -math.MaxInt16
	}
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

// Encode16 compresses a full 16-bit linear sample with c.
func Encode16(c Compander, linear int16) byte {
	return c.Compress(linear >> c.Shift())
}
