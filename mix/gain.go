// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"github.com/ik5/audmix/volume"
)

// StreamGains fills streams[i].Linear for channels [0, channels) with the
// product of each stream's own volume and the output volume, both taken
// through curve, in representation rep.
func StreamGains(streams []StreamInput, out *volume.ChannelVolume, channels int, rep volume.Representation, curve volume.Curve) {
	var linear volume.Linear
	linear.SetFloat(out, curve)

	if rep == volume.Float {
		for i := range streams {
			m := &streams[i]
			for c := range channels {
				m.Linear.F[c] = float32(curve(m.Volume.Values[c]) * float64(linear.F[c]))
			}
		}
		return
	}

	for i := range streams {
		m := &streams[i]
		for c := range channels {
			m.Linear.I[c] = volume.ToFixed(curve(m.Volume.Values[c]) * float64(linear.F[c]))
		}
	}
}
