// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"

	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/volume"
)

// Mixer combines streams through a kernel Table using a volume Curve.
type Mixer struct {
	Table *Table
	Curve volume.Curve
}

// New returns a Mixer over table. A nil table selects DefaultTable and a
// nil curve selects volume.SoftwareToLinear.
func New(table *Table, curve volume.Curve) *Mixer {
	if table == nil {
		table = DefaultTable
	}
	if curve == nil {
		curve = volume.SoftwareToLinear
	}
	return &Mixer{Table: table, Curve: curve}
}

// Default is the Mixer behind the package level Mix and ApplyVolume.
var Default = New(nil, nil)

func checkSpec(spec sample.Spec) {
	if err := spec.Validate(); err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidSpec, err))
	}
}

// Mix sums streams into dst and returns the number of bytes written.
//
// Every stream must hold samples in spec.Format. The result covers the
// shortest stream buffer, rounded down to whole frames, and never more
// than len(dst). When mute is set, out is muted or there are no streams,
// all of dst is filled with silence, no stream buffer is touched and
// len(dst) is returned. A nil out means unity gain.
//
// Mix panics on an empty dst, an invalid spec, a dst that is not frame
// aligned, an out or stream volume with a different channel count or a
// stream with a nil Buffer.
func (m *Mixer) Mix(streams []StreamInput, dst []byte, spec sample.Spec, out *volume.ChannelVolume, mute bool) int {
	if len(dst) == 0 {
		panic(ErrEmptyBuffer)
	}
	checkSpec(spec)
	if !spec.FrameAligned(len(dst)) {
		panic(fmt.Errorf("%w: %d bytes for %s", ErrNotFrameAligned, len(dst), spec))
	}

	if out == nil {
		unity := volume.Unity(spec.Channels)
		out = &unity
	}
	if !out.Compatible(spec) {
		panic(fmt.Errorf("%w: volume has %d, spec has %d", ErrChannelMismatch, out.Channels, spec.Channels))
	}

	for i := range streams {
		if streams[i].Buffer == nil {
			panic(fmt.Errorf("%w: stream %d", ErrNilBuffer, i))
		}
		if !streams[i].Volume.Compatible(spec) {
			panic(fmt.Errorf("%w: stream %d volume has %d, spec has %d", ErrChannelMismatch, i, streams[i].Volume.Channels, spec.Channels))
		}
	}

	if mute || out.IsMuted() || len(streams) == 0 {
		sample.FillSilence(dst, spec.Format)
		return len(dst)
	}

	length := len(dst)
	acquired := 0
	defer func() {
		for i := range acquired {
			streams[i].Data = nil
			streams[i].Buffer.Release()
		}
	}()

	for i := range streams {
		s := &streams[i]
		s.Data = s.Buffer.Acquire()
		acquired++
		length = min(length, len(s.Data))
	}

	length -= length % spec.FrameSize()
	if length == 0 {
		return 0
	}

	rep := m.Table.Representation(spec.Format)
	StreamGains(streams, out, spec.Channels, rep, m.Curve)

	m.Table.MixKernel(spec.Format)(streams, spec.Channels, dst[:length])

	return length
}

// ApplyVolume scales the samples of buf in place.
//
// A buffer reporting silence, or a unity v, is left alone. A muted v
// rewrites buf as silence. ApplyVolume panics on a nil buf or v, an
// invalid spec, a channel count mismatch or a buffer that is not frame
// aligned.
func (m *Mixer) ApplyVolume(buf Buffer, spec sample.Spec, v *volume.ChannelVolume) {
	if buf == nil {
		panic(ErrNilBuffer)
	}
	if v == nil {
		panic(ErrNilVolume)
	}
	checkSpec(spec)
	if !v.Compatible(spec) {
		panic(fmt.Errorf("%w: volume has %d, spec has %d", ErrChannelMismatch, v.Channels, spec.Channels))
	}

	if sr, ok := buf.(SilenceReporter); ok && sr.IsSilence() {
		return
	}
	if v.IsNorm() {
		return
	}

	data := buf.Acquire()
	defer buf.Release()

	if !spec.FrameAligned(len(data)) {
		panic(fmt.Errorf("%w: %d bytes for %s", ErrNotFrameAligned, len(data), spec))
	}

	if v.IsMuted() {
		sample.FillSilence(data, spec.Format)
		return
	}

	var linear volume.Linear
	linear.Set(v, m.Curve, m.Table.Representation(spec.Format))

	m.Table.VolumeKernel(spec.Format)(data, &linear, spec.Channels)
}

// Mix runs Default.Mix.
func Mix(streams []StreamInput, dst []byte, spec sample.Spec, out *volume.ChannelVolume, mute bool) int {
	return Default.Mix(streams, dst, spec, out, mute)
}

// ApplyVolume runs Default.ApplyVolume.
func ApplyVolume(buf Buffer, spec sample.Spec, v *volume.ChannelVolume) {
	Default.ApplyVolume(buf, spec, v)
}
