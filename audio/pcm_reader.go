// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audmix/sample"
)

// PCMReader pulls float samples from a Source and encodes them as raw PCM
// in a fixed sample format.
type PCMReader struct {
	src  Source
	spec sample.Spec
	tmp  []float32
	eof  bool
}

// NewPCMReader wraps src so it reads as format f at the source's own rate
// and channel count.
func NewPCMReader(src Source, f sample.Format) (*PCMReader, error) {
	spec := sample.Spec{Format: f, Rate: src.SampleRate(), Channels: src.Channels()}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	return &PCMReader{
		src:  src,
		spec: spec,
		tmp:  make([]float32, max(src.BufSize(), spec.Channels)),
	}, nil
}

// Spec describes the bytes Read produces.
func (r *PCMReader) Spec() sample.Spec { return r.spec }

func (r *PCMReader) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Read fills dst with whole frames. It keeps pulling from the source until
// dst is full or the source ends, so a short count comes with io.EOF or an
// error. Bytes past the returned count are untouched.
func (r *PCMReader) Read(dst []byte) (int, error) {
	frameSize := r.spec.FrameSize()
	if len(dst) < frameSize {
		return 0, ErrInvalidDstSize
	}
	if r.eof {
		return 0, io.EOF
	}

	want := len(dst) / frameSize * r.spec.Channels
	if cap(r.tmp) < want {
		r.tmp = make([]float32, want)
	}
	buf := r.tmp[:want]

	got := 0
	var err error

	for got < want && err == nil {
		var n int
		n, err = r.src.ReadSamples(buf[got:])
		got += n

		if n == 0 && err == nil {
			err = io.ErrNoProgress
		}
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		err = io.EOF
	}

	// A trailing partial frame from the source is dropped.
	got -= got % r.spec.Channels
	written := Encode(dst, buf[:got], r.spec.Format)

	if err != nil && !r.eof {
		return written, fmt.Errorf("%w", err)
	}
	if r.eof {
		return written, io.EOF
	}

	return written, nil
}
