// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"fmt"
	"math"

	"github.com/ik5/audmix/sample"
)

// Padding is the number of slots after the real channels that are filled so
// a fixed-width reader may run past the channel count.
const Padding = 32

// Representation selects how a kernel group consumes linear gains.
type Representation int

const (
	// Fixed is Q16.16 in an int32.
	Fixed Representation = iota
	// Float is a plain float32 ratio.
	Float
)

func (r Representation) String() string {
	switch r {
	case Fixed:
		return "fixed"
	case Float:
		return "float"
	}
	return fmt.Sprintf("representation(%d)", int(r))
}

// Linear is scratch space for per-channel linear gains. Only the field
// matching the kernel's Representation is meaningful.
type Linear struct {
	I [sample.ChannelsMax + Padding]int32
	F [sample.ChannelsMax + Padding]float32
}

// ToFixed converts a linear ratio to Q16.16, rounding half to even.
// Ratios outside the int32 range saturate; the kernels then clamp the
// result to full scale.
func ToFixed(ratio float64) int32 {
	v := math.RoundToEven(ratio * 0x10000)
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// SetFixed fills l.I from cv through curve and pads it.
func (l *Linear) SetFixed(cv *ChannelVolume, curve Curve) {
	n := cv.Channels
	for c := range n {
		l.I[c] = ToFixed(curve(cv.Values[c]))
	}

	for p := range Padding {
		l.I[n+p] = l.I[p]
	}
}

// SetFloat fills l.F from cv through curve and pads it.
func (l *Linear) SetFloat(cv *ChannelVolume, curve Curve) {
	n := cv.Channels
	for c := range n {
		l.F[c] = float32(curve(cv.Values[c]))
	}

	for p := range Padding {
		l.F[n+p] = l.F[p]
	}
}

// Set fills the field selected by rep.
func (l *Linear) Set(cv *ChannelVolume, curve Curve, rep Representation) {
	if rep == Float {
		l.SetFloat(cv, curve)
		return
	}
	l.SetFixed(cv, curve)
}
