// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/memblock"
	"github.com/ik5/audmix/mix"
	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/volume"
)

// DefaultPeriodFrames is the period length used when Options.PeriodFrames
// is zero.
const DefaultPeriodFrames = 1024

// Options controls a Mixdown.
type Options struct {
	// Format is the sample format of both the mix and the returned bytes.
	// The zero value is sample.U8.
	Format sample.Format

	// PeriodFrames is the number of frames mixed per pass.
	PeriodFrames int

	// Volumes holds one volume per source. Empty means every source plays
	// at volume.Norm.
	Volumes []volume.ChannelVolume

	// Output is applied on top of every source volume. Nil means unity.
	Output *volume.ChannelVolume

	// Mute produces silence of the full mixed length.
	Mute bool

	// Mixer does the work. Nil means mix.Default.
	Mixer *mix.Mixer
}

type input struct {
	reader *audio.PCMReader
	block  *memblock.Block
	done   bool
}

// Mixdown mixes every source into one raw PCM stream in opts.Format.
//
// All sources must share a sample rate and channel count; nothing is
// resampled or remapped. Sources are read a period at a time. A source
// that ends is padded with silence to the end of that period and then
// leaves the mix, so the result is as long as the longest source.
//
// Mixdown does not close the sources.
func Mixdown(srcs []audio.Source, opts Options) ([]byte, error) {
	if len(srcs) == 0 {
		return nil, ErrNoSources
	}

	spec := sample.Spec{Format: opts.Format, Rate: srcs[0].SampleRate(), Channels: srcs[0].Channels()}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrUnsupportedFormat, err)
	}

	for i, src := range srcs[1:] {
		if src.SampleRate() != spec.Rate {
			return nil, fmt.Errorf("%w: source %d is %d Hz, want %d", ErrRateMismatch, i+1, src.SampleRate(), spec.Rate)
		}
		if src.Channels() != spec.Channels {
			return nil, fmt.Errorf("%w: source %d has %d, want %d", ErrChannelMismatch, i+1, src.Channels(), spec.Channels)
		}
	}

	if len(opts.Volumes) != 0 && len(opts.Volumes) != len(srcs) {
		return nil, fmt.Errorf("%w: %d volumes for %d sources", ErrVolumeCount, len(opts.Volumes), len(srcs))
	}
	for i := range opts.Volumes {
		if !opts.Volumes[i].Compatible(spec) {
			return nil, fmt.Errorf("%w: volume %d has %d channels", ErrChannelMismatch, i, opts.Volumes[i].Channels)
		}
	}
	if opts.Output != nil && !opts.Output.Compatible(spec) {
		return nil, fmt.Errorf("%w: output volume has %d channels", ErrChannelMismatch, opts.Output.Channels)
	}

	period := opts.PeriodFrames
	if period <= 0 {
		period = DefaultPeriodFrames
	}
	periodBytes := period * spec.FrameSize()

	mixer := opts.Mixer
	if mixer == nil {
		mixer = mix.Default
	}

	inputs := make([]input, len(srcs))
	for i, src := range srcs {
		r, err := audio.NewPCMReader(src, spec.Format)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i, err)
		}
		inputs[i] = input{reader: r, block: memblock.New(make([]byte, periodBytes))}
	}

	streams := make([]mix.StreamInput, 0, len(srcs))
	active := make([]int, 0, len(srcs))
	dst := make([]byte, periodBytes)
	var out []byte

	for {
		active = active[:0]
		length := 0

		for i := range inputs {
			in := &inputs[i]
			if in.done {
				continue
			}

			n, err := in.fill(spec.Format)
			switch {
			case errors.Is(err, io.EOF):
				in.done = true
			case err != nil:
				return nil, fmt.Errorf("source %d: %w", i, err)
			}
			if n > 0 {
				active = append(active, i)
				length = max(length, n)
			}
		}

		if length == 0 {
			return out, nil
		}

		// Shorter reads were padded with silence up to the period, so every
		// stream can be mixed over the longest one.
		streams = streams[:0]
		for _, i := range active {
			v := volume.Unity(spec.Channels)
			if len(opts.Volumes) != 0 {
				v = opts.Volumes[i]
			}
			streams = append(streams, mix.StreamInput{
				Buffer: memblock.Chunk{Block: inputs[i].block, Length: length},
				Volume: v,
			})
		}

		n := mixer.Mix(streams, dst[:length], spec, opts.Output, opts.Mute)
		out = append(out, dst[:n]...)
	}
}

// fill reads one period into the block and pads whatever the reader could
// not supply with silence.
func (in *input) fill(f sample.Format) (int, error) {
	c := memblock.NewChunk(in.block)
	data := c.Writable()
	defer c.Release()

	n, err := in.reader.Read(data)
	sample.FillSilence(data[n:], f)

	return n, err
}
