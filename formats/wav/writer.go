// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audmix/companding"
	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/utils"
)

// BitDepth returns the integer WAV sample width that holds f without loss.
// Companded samples are expanded to 16 bits and float32 is stored as 32-bit
// integer PCM.
func BitDepth(f sample.Format) int {
	switch f {
	case sample.U8:
		return 8
	case sample.ALaw, sample.ULaw, sample.S16LE, sample.S16BE:
		return 16
	case sample.S24LE, sample.S24BE, sample.S24In32LE, sample.S24In32BE:
		return 24
	case sample.S32LE, sample.S32BE, sample.Float32LE, sample.Float32BE:
		return 32
	}
	return 0
}

// Writer turns raw PCM in any sample.Format into a WAV file. The header is
// finalized by Close, which needs to seek back into w.
type Writer struct {
	enc    *wav.Encoder
	spec   sample.Spec
	buf    *goaudio.IntBuffer
	closed bool
}

// NewWriter starts a WAV file on w for PCM described by spec.
func NewWriter(w io.WriteSeeker, spec sample.Spec) (*Writer, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	depth := BitDepth(spec.Format)

	return &Writer{
		enc:  wav.NewEncoder(w, spec.Rate, depth, spec.Channels, formatPCM),
		spec: spec,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: spec.Channels, SampleRate: spec.Rate},
			SourceBitDepth: depth,
		},
	}, nil
}

// Spec describes the bytes Write accepts.
func (w *Writer) Spec() sample.Spec { return w.spec }

// Write appends whole frames of raw PCM.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if !w.spec.FrameAligned(len(p)) {
		return 0, fmt.Errorf("%w: %d bytes for %s", ErrNotFrameAligned, len(p), w.spec)
	}

	size := w.spec.Format.SampleSize()
	n := len(p) / size

	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]

	for i := range n {
		w.buf.Data[i] = toInt(p[i*size:(i+1)*size], w.spec.Format)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return len(p), nil
}

// Close writes the final chunk sizes. The underlying writer is not closed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	// The encoder only emits its header on the first write.
	w.buf.Data = w.buf.Data[:0]
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// toInt decodes one sample of f into the integer WAV stores for it.
func toInt(b []byte, f sample.Format) int {
	switch f {
	case sample.U8:
		return int(b[0])
	case sample.ALaw:
		return int(companding.ALaw{}.Expand(b[0]))
	case sample.ULaw:
		return int(companding.ULaw{}.Expand(b[0]))
	case sample.S16LE:
		return int(int16(binary.LittleEndian.Uint16(b)))
	case sample.S16BE:
		return int(int16(binary.BigEndian.Uint16(b)))
	case sample.S24LE:
		return int(goaudio.Int24LETo32(b))
	case sample.S24BE:
		return int(goaudio.Int24BETo32(b))
	case sample.S24In32LE:
		return int(int32(binary.LittleEndian.Uint32(b)<<8) >> 8)
	case sample.S24In32BE:
		return int(int32(binary.BigEndian.Uint32(b)<<8) >> 8)
	case sample.S32LE:
		return int(int32(binary.LittleEndian.Uint32(b)))
	case sample.S32BE:
		return int(int32(binary.BigEndian.Uint32(b)))
	case sample.Float32LE:
		return int(utils.Float32ToInt32(math.Float32frombits(binary.LittleEndian.Uint32(b))))
	case sample.Float32BE:
		return int(utils.Float32ToInt32(math.Float32frombits(binary.BigEndian.Uint32(b))))
	}
	return 0
}
