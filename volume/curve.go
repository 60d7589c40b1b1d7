// SPDX-License-Identifier: EPL-2.0

package volume

import "math"

// Curve maps a logarithmic Volume to a linear amplitude ratio. It must
// return 0 for Muted and 1.0 for Norm and be monotonic in between.
type Curve func(Volume) float64

// SoftwareToLinear is the default curve: the cube of the level relative to
// Norm.
func SoftwareToLinear(v Volume) float64 {
	if v <= Muted {
		return 0
	}
	if v == Norm {
		return 1.0
	}

	f := float64(v) / float64(Norm)
	return f * f * f
}

// SoftwareFromLinear is the inverse of SoftwareToLinear.
func SoftwareFromLinear(linear float64) Volume {
	if linear <= 0 {
		return Muted
	}
	if linear == 1.0 {
		return Norm
	}

	v := math.Round(math.Cbrt(linear) * float64(Norm))
	if v >= float64(Max) {
		return Max
	}
	return Volume(v)
}

// ToDecibel converts v to decibels through SoftwareToLinear. Muted is
// negative infinity.
func ToDecibel(v Volume) float64 {
	if v <= Muted {
		return math.Inf(-1)
	}
	return 20 * math.Log10(SoftwareToLinear(v))
}

// FromDecibel converts decibels to a Volume through SoftwareFromLinear.
func FromDecibel(db float64) Volume {
	if math.IsInf(db, -1) {
		return Muted
	}
	return SoftwareFromLinear(math.Pow(10, db/20))
}
