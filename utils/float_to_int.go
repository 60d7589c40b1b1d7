// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float samples map [-1.0, 1.0) onto the full signed range of the target
// width: -1.0 is the most negative code and anything at or above 1.0
// clamps to the most positive one. Scaling truncates toward zero.

// Float32ToUint8 converts x to unsigned 8-bit PCM biased by 0x80.
func Float32ToUint8(x float32) uint8 {
	v := int32(clampUnit(x) * 128)
	v = min(v, math.MaxInt8)
	return uint8(v + 0x80)
}

// Float32ToInt16 converts x to signed 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	v := int32(clampUnit(x) * 32768)
	return int16(min(v, math.MaxInt16))
}

// Float32ToInt24 converts x to a signed 24-bit value held in an int32.
func Float32ToInt24(x float32) int32 {
	v := int32(clampUnit(x) * (1 << 23))
	return min(v, 1<<23-1)
}

// Float32ToInt32 converts x to signed 32-bit PCM. The product is formed in
// float64 since float32 cannot hold every 32-bit code.
func Float32ToInt32(x float32) int32 {
	v := int64(float64(clampUnit(x)) * (1 << 31))
	return int32(min(v, math.MaxInt32))
}

func clampUnit(x float32) float32 {
	if math.IsNaN(float64(x)) {
		return 0
	}
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
