// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/companding"
	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/utils"
)

// writeWAV encodes data through a Writer into a temporary file and returns
// the file contents.
func writeWAV(t *testing.T, spec sample.Spec, data []byte) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	w, err := NewWriter(f, spec)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	return out
}

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 64*src.Channels())

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	s16 := []int16{0, 100, -100, math.MaxInt16, math.MinInt16, 12345}

	tests := []struct {
		name   string
		format sample.Format
		data   func() []byte
		want   []float32
	}{
		{
			name:   "s16le",
			format: sample.S16LE,
			data: func() []byte {
				var b []byte
				for _, v := range s16 {
					b = binary.LittleEndian.AppendUint16(b, uint16(v))
				}
				return b
			},
			want: func() []float32 {
				var f []float32
				for _, v := range s16 {
					f = append(f, utils.IntToFloat32(int(v), 16))
				}
				return f
			}(),
		},
		{
			name:   "s16be",
			format: sample.S16BE,
			data: func() []byte {
				var b []byte
				for _, v := range s16 {
					b = binary.BigEndian.AppendUint16(b, uint16(v))
				}
				return b
			},
			want: func() []float32 {
				var f []float32
				for _, v := range s16 {
					f = append(f, utils.IntToFloat32(int(v), 16))
				}
				return f
			}(),
		},
		{
			name:   "u8",
			format: sample.U8,
			data:   func() []byte { return []byte{0x80, 0xc0, 0x40, 0xff, 0x00, 0x80} },
			want:   []float32{0, 0.5, -0.5, 127.0 / 128, -1, 0},
		},
		{
			name:   "s24be",
			format: sample.S24BE,
			data: func() []byte {
				return []byte{0x40, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff}
			},
			want: []float32{0.5, -1, 0, -1.0 / (1 << 23)},
		},
		{
			name:   "s24-32le",
			format: sample.S24In32LE,
			data: func() []byte {
				return []byte{0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0xc0, 0x00}
			},
			want: []float32{0.5, -0.5},
		},
		{
			name:   "float32le",
			format: sample.Float32LE,
			data: func() []byte {
				var b []byte
				for _, v := range []float32{0.5, -0.25, 0, -1} {
					b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
				}
				return b
			},
			want: []float32{0.5, -0.25, 0, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := sample.Spec{Format: tt.format, Rate: 8000, Channels: 2}
			file := writeWAV(t, spec, tt.data())

			src, err := Decoder{}.Decode(bytes.NewReader(file))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 8000 || src.Channels() != 2 {
				t.Errorf("Decode() = %d Hz %d ch, want 8000 Hz 2 ch", src.SampleRate(), src.Channels())
			}

			got := readAll(t, src)
			if len(got) != len(tt.want) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWriter_CompandedExpandsTo16(t *testing.T) {
	t.Parallel()

	codes := []byte{0xd5, 0x2a, 0xaa, 0x55}
	file := writeWAV(t, sample.Spec{Format: sample.ALaw, Rate: 8000, Channels: 1}, codes)

	src, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	for i, c := range codes {
		want := utils.IntToFloat32(int(companding.ALaw{}.Expand(c)), 16)
		if got[i] != want {
			t.Errorf("code %#x decoded as %v, want %v", c, got[i], want)
		}
	}
}

func TestWriter_Empty(t *testing.T) {
	t.Parallel()

	file := writeWAV(t, sample.Spec{Format: sample.S16LE, Rate: 8000, Channels: 1}, nil)

	if len(file) != 44 {
		t.Errorf("empty WAV is %d bytes, want a bare 44 byte header", len(file))
	}
	if !bytes.Equal(file[:4], []byte("RIFF")) || !bytes.Equal(file[8:12], []byte("WAVE")) {
		t.Errorf("header = %q", file[:12])
	}
}

func TestWriter_Errors(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}
	defer f.Close()

	if _, err := NewWriter(f, sample.Spec{Format: sample.Invalid, Rate: 8000, Channels: 1}); !errors.Is(err, sample.ErrInvalidFormat) {
		t.Errorf("NewWriter() error = %v, want %v", err, sample.ErrInvalidFormat)
	}

	w, err := NewWriter(f, sample.Spec{Format: sample.S16LE, Rate: 8000, Channels: 2})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, err := w.Write(make([]byte, 6)); !errors.Is(err, ErrNotFrameAligned) {
		t.Errorf("Write() error = %v, want %v", err, ErrNotFrameAligned)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := w.Write(make([]byte, 4)); !errors.Is(err, ErrClosed) {
		t.Errorf("Write() after Close error = %v, want %v", err, ErrClosed)
	}
}

func TestBitDepth(t *testing.T) {
	t.Parallel()

	for f := range sample.FormatMax {
		if BitDepth(f) == 0 {
			t.Errorf("BitDepth(%s) = 0", f)
		}
	}
	if BitDepth(sample.Invalid) != 0 {
		t.Error("BitDepth(Invalid) != 0")
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not WAV data at all, just some words")},
		{"aiff magic", append([]byte("FORM\x00\x00\x00\x04AIFF"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotWavFile)
			}
		})
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	file := writeWAV(t, sample.Spec{Format: sample.S16LE, Rate: 16000, Channels: 1}, []byte{0x00, 0x40})

	// Hide the Seek method of bytes.Reader.
	r := struct{ io.Reader }{bytes.NewReader(file)}

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); len(got) != 1 || got[0] != 0.5 {
		t.Errorf("samples = %v, want [0.5]", got)
	}
}

type stubReader struct {
	data []int
	err  error
}

func (s *stubReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n := copy(buf.Data, s.data)
	s.data = s.data[n:]
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{dec: &stubReader{data: []int{1 << 30, -1 << 31}}, sampleRate: 8000, channels: 2, bitDepth: 32}

	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() into one slot error = %v, want %v", err, audio.ErrInvalidDstSize)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}

	buf := make([]float32, 3)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 2 {
		t.Fatalf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if buf[0] != 0.5 || buf[1] != -1 {
		t.Errorf("samples = %v, want [0.5 -1]", buf[:2])
	}

	if n, err := src.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, io.EOF", n, err)
	}

	boom := errors.New("boom")
	broken := &source{dec: &stubReader{err: boom}, sampleRate: 8000, channels: 1, bitDepth: 16}
	if _, err := broken.ReadSamples(buf); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
