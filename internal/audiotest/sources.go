// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides in-memory sources for tests and examples.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates frames from a waveform function. It implements
// audio.Source without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	waveform   func(frame, channel int) float32

	Closed bool
}

// NewMockSource returns a source of frames frames whose samples come from
// waveform.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates digital silence.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewSineSource generates the same sine wave on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates value on every channel.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSequenceSource plays back interleaved samples once.
func NewSequenceSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) float32 {
		return samples[frame*channels+channel]
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

// ReadSamples writes whole frames only. The call that reaches the last
// frame returns io.EOF together with its samples.
func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.frames-m.generated)

	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.frames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// ErrorSource fails every read with Err.
type ErrorSource struct {
	Rate, Chans int
	Err         error
}

func (e ErrorSource) SampleRate() int                    { return e.Rate }
func (e ErrorSource) Channels() int                      { return e.Chans }
func (e ErrorSource) BufSize() int                       { return 4096 }
func (e ErrorSource) Close() error                       { return nil }
func (e ErrorSource) ReadSamples([]float32) (int, error) { return 0, e.Err }
