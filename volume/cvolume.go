// SPDX-License-Identifier: EPL-2.0

package volume

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ik5/audmix/sample"
)

// ChannelVolume carries one Volume per channel.
type ChannelVolume struct {
	Channels int
	Values   [sample.ChannelsMax]Volume
}

// New returns a ChannelVolume with every channel set to v.
func New(channels int, v Volume) ChannelVolume {
	var cv ChannelVolume
	cv.Set(channels, v)
	return cv
}

// Unity returns a ChannelVolume at Norm on every channel.
func Unity(channels int) ChannelVolume {
	return New(channels, Norm)
}

// Silent returns a ChannelVolume at Muted on every channel.
func Silent(channels int) ChannelVolume {
	return New(channels, Muted)
}

// Set sets the channel count and assigns v to every channel.
func (cv *ChannelVolume) Set(channels int, v Volume) *ChannelVolume {
	if channels < 0 || channels > sample.ChannelsMax {
		panic(fmt.Errorf("%w: %d", ErrInvalidChannels, channels))
	}

	cv.Channels = channels
	for i := range channels {
		cv.Values[i] = v
	}
	return cv
}

// Reset sets every channel to Norm.
func (cv *ChannelVolume) Reset(channels int) *ChannelVolume {
	return cv.Set(channels, Norm)
}

// Valid reports whether the channel count and every level are in range.
func (cv *ChannelVolume) Valid() bool {
	if cv.Channels <= 0 || cv.Channels > sample.ChannelsMax {
		return false
	}
	for _, v := range cv.Values[:cv.Channels] {
		if !v.Valid() {
			return false
		}
	}
	return true
}

// Compatible reports whether cv is valid and has as many channels as spec.
func (cv *ChannelVolume) Compatible(spec sample.Spec) bool {
	return cv.Valid() && cv.Channels == spec.Channels
}

// ChannelsEqualTo reports whether every channel is exactly v.
func (cv *ChannelVolume) ChannelsEqualTo(v Volume) bool {
	for _, c := range cv.Values[:cv.Channels] {
		if c != v {
			return false
		}
	}
	return true
}

// IsMuted reports whether every channel is Muted.
func (cv *ChannelVolume) IsMuted() bool { return cv.ChannelsEqualTo(Muted) }

// IsNorm reports whether every channel is Norm.
func (cv *ChannelVolume) IsNorm() bool { return cv.ChannelsEqualTo(Norm) }

// Equal reports whether both carry the same channel count and levels.
func (cv *ChannelVolume) Equal(other *ChannelVolume) bool {
	if cv.Channels != other.Channels {
		return false
	}
	return slices.Equal(cv.Values[:cv.Channels], other.Values[:cv.Channels])
}

// Avg returns the mean level across channels.
func (cv *ChannelVolume) Avg() Volume {
	if cv.Channels == 0 {
		return Muted
	}

	var sum uint64
	for _, v := range cv.Values[:cv.Channels] {
		sum += uint64(v)
	}
	return Volume(sum / uint64(cv.Channels))
}

// Max returns the loudest channel level.
func (cv *ChannelVolume) Max() Volume {
	m := Muted
	for _, v := range cv.Values[:cv.Channels] {
		m = max(m, v)
	}
	return m
}

// Scale rescales every channel so the loudest becomes target, keeping the
// balance between channels.
func (cv *ChannelVolume) Scale(target Volume) *ChannelVolume {
	peak := cv.Max()
	if peak <= Muted {
		return cv.Set(cv.Channels, target)
	}

	for i, v := range cv.Values[:cv.Channels] {
		cv.Values[i] = Volume(min(uint64(v)*uint64(target)/uint64(peak), uint64(Max)))
	}
	return cv
}

func (cv *ChannelVolume) String() string {
	if !cv.Valid() {
		return "(invalid)"
	}

	var b strings.Builder
	for i, v := range cv.Values[:cv.Channels] {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%d: %s", i, v)
	}
	return b.String()
}
