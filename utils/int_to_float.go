// SPDX-License-Identifier: EPL-2.0

package utils

// IntToFloat32 normalizes a signed sample of bitDepth bits to [-1.0, 1.0).
// Unsupported depths are treated as 16-bit.
func IntToFloat32(v, bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		bitDepth = 16
	}
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}

// Uint8ToFloat32 normalizes unsigned 8-bit PCM biased by 0x80.
func Uint8ToFloat32(v uint8) float32 {
	return float32(int(v)-0x80) / 128
}
