// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"fmt"
	"math"
)

// Volume is a software volume level on a logarithmic scale.
type Volume uint32

const (
	// Muted produces zero output.
	Muted Volume = 0
	// Norm is unity gain.
	Norm Volume = 0x10000
	// Max is the largest accepted level.
	Max Volume = math.MaxUint32 / 2
	// Invalid marks an unset level.
	Invalid Volume = math.MaxUint32
)

// Valid reports whether v is within [Muted, Max].
func (v Volume) Valid() bool {
	return v <= Max
}

// Percent returns v as a percentage of Norm.
func (v Volume) Percent() float64 {
	return float64(v) * 100 / float64(Norm)
}

func (v Volume) String() string {
	if !v.Valid() {
		return "(invalid)"
	}
	return fmt.Sprintf("%.0f%%", math.Round(v.Percent()))
}
