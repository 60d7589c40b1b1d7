// SPDX-License-Identifier: EPL-2.0

package sample

import "fmt"

const (
	// ChannelsMax is the largest channel count a Spec may carry.
	ChannelsMax = 32
	// RateMax is the largest sample rate a Spec may carry, in Hz.
	RateMax = 48000 * 16
)

// Spec describes an interleaved PCM stream.
type Spec struct {
	Format   Format
	Rate     int // Hz
	Channels int
}

// Valid reports whether the format, rate and channel count are in range.
func (s Spec) Valid() bool {
	return s.Format.Valid() &&
		s.Rate > 0 && s.Rate <= RateMax &&
		s.Channels > 0 && s.Channels <= ChannelsMax
}

// Validate is Valid with a reason.
func (s Spec) Validate() error {
	switch {
	case !s.Format.Valid():
		return fmt.Errorf("%w: %s", ErrInvalidFormat, s.Format)
	case s.Rate <= 0 || s.Rate > RateMax:
		return fmt.Errorf("%w: %d", ErrInvalidRate, s.Rate)
	case s.Channels <= 0 || s.Channels > ChannelsMax:
		return fmt.Errorf("%w: %d", ErrInvalidChannels, s.Channels)
	}
	return nil
}

// FrameSize is the number of bytes holding one sample for every channel.
func (s Spec) FrameSize() int {
	return s.Format.SampleSize() * s.Channels
}

// FrameAligned reports whether n bytes is a whole number of frames.
func (s Spec) FrameAligned(n int) bool {
	fs := s.FrameSize()
	return fs > 0 && n%fs == 0
}

// Frames returns the number of whole frames in n bytes.
func (s Spec) Frames(n int) int {
	fs := s.FrameSize()
	if fs == 0 {
		return 0
	}
	return n / fs
}

// BytesPerSecond is the data rate of the stream.
func (s Spec) BytesPerSecond() int {
	return s.Rate * s.FrameSize()
}

func (s Spec) String() string {
	return fmt.Sprintf("%s %dch %dHz", s.Format, s.Channels, s.Rate)
}
