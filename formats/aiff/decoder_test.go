// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audmix/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate int
	channels   int
	samples    []int
	offset     int
	err        error
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func newMockSource(channels, bitDepth int, samples []int) *source {
	return &source{
		dec:        &mockAiffReader{sampleRate: 44100, channels: channels, samples: samples},
		sampleRate: 44100,
		channels:   channels,
		bitDepth:   bitDepth,
	}
}

// buildAIFF assembles a minimal 16-bit AIFF file.
func buildAIFF(channels, rate int, samples []int16) []byte {
	var comm bytes.Buffer
	binary.Write(&comm, binary.BigEndian, int16(channels))
	binary.Write(&comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(&comm, binary.BigEndian, int16(16))
	sr := goaudio.IntToIEEEFloat(rate)
	comm.Write(sr[:])

	var ssnd bytes.Buffer
	binary.Write(&ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(&ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		binary.Write(&ssnd, binary.BigEndian, s)
	}

	var body bytes.Buffer
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(&body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(&body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	var file bytes.Buffer
	file.WriteString("FORM")
	binary.Write(&file, binary.BigEndian, uint32(body.Len()))
	file.Write(body.Bytes())

	return file.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("This is not AIFF data")},
		{"wav magic", append([]byte("RIFF\x00\x00\x00\x00WAVE"), make([]byte, 32)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error for invalid data")
			}
		})
	}
}

func TestDecoder_Decode16(t *testing.T) {
	t.Parallel()

	data := buildAIFF(2, 22050, []int16{16384, -16384, 0, -32768})

	// Hide the Seek method so the decoder has to buffer.
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("Decode() = %d Hz %d ch, want 22050 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	buf := make([]float32, 8)
	var got []float32
	for {
		n, err := src.ReadSamples(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	want := []float32{0.5, -0.5, 0, -1}
	if len(got) != len(want) {
		t.Fatalf("decoded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"8-bit", 8, []int{0, 64, -128}, []float32{0, 0.5, -1}},
		{"16-bit", 16, []int{0, 16384, -16384, -32768}, []float32{0, 0.5, -0.5, -1}},
		{"24-bit", 24, []int{1 << 22, -1 << 23}, []float32{0.5, -1}},
		{"32-bit", 32, []int{-1 << 30}, []float32{-0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newMockSource(1, tt.bitDepth, tt.samples)

			dst := make([]float32, 16)
			n, err := src.ReadSamples(dst)
			if !errors.Is(err, io.EOF) {
				t.Errorf("ReadSamples() error = %v, want io.EOF with the last samples", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.want))
			}
			for i := range n {
				if dst[i] != tt.want[i] {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], tt.want[i])
				}
			}

			if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
				t.Errorf("ReadSamples() after end = %d, %v", n, err)
			}
		})
	}
}

func TestSource_ReadSamples_WholeFrames(t *testing.T) {
	t.Parallel()

	src := newMockSource(2, 16, make([]int, 100))

	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
	if _, err := src.ReadSamples(make([]float32, 1)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() into one slot error = %v, want %v", err, audio.ErrInvalidDstSize)
	}

	n, err := src.ReadSamples(make([]float32, 7))
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, 16, nil)
	src.dec.(*mockAiffReader).err = io.ErrUnexpectedEOF

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
