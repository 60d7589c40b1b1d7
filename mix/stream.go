// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"github.com/ik5/audmix/volume"
)

// Buffer is the view the mixer needs onto externally owned sample memory.
// Every Acquire is paired with exactly one Release.
type Buffer interface {
	Acquire() []byte
	Release()
}

// SilenceReporter is implemented by buffers that know when they hold only
// silence. ApplyVolume skips such buffers.
type SilenceReporter interface {
	IsSilence() bool
}

// StreamInput is one contributing stream of a Mix call.
type StreamInput struct {
	// Buffer holds samples in the target format of the mix.
	Buffer Buffer
	// Volume is the stream's own per-channel volume.
	Volume volume.ChannelVolume

	// Data is the read cursor. Mix sets it from Buffer.Acquire and the
	// kernel advances it one sample at a time. It is only valid while
	// Mix runs.
	Data []byte
	// Linear holds the combined stream and output gains, filled by Mix.
	Linear volume.Linear
}

// Kernel mixes len(dst) bytes worth of samples from every stream into dst.
//
// A Kernel reads streams[i].Linear for channels [0, channels), advances
// every streams[i].Data by exactly len(dst) bytes and writes all of dst.
// Replacement kernels must keep the rounding and clamping of the built in
// ones.
type Kernel func(streams []StreamInput, channels int, dst []byte)

// VolumeKernel scales data in place by the per-channel gains in linear.
type VolumeKernel func(data []byte, linear *volume.Linear, channels int)
