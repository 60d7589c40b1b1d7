// SPDX-License-Identifier: EPL-2.0

// Package audio connects decoded audio to the mixer.
//
// # Source Interface
//
// Decoders produce a Source of interleaved float32 samples in [-1.0, 1.0]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Encoding
//
// The mixer works on raw PCM in one of the formats of package sample.
// PCMReader pulls from a Source and encodes whole frames into that format:
//
//	r, err := audio.NewPCMReader(source, sample.S16LE)
//	buf := make([]byte, r.Spec().FrameSize()*1024)
//	n, err := r.Read(buf)
//
// Read always returns whole frames. It keeps pulling from the source until
// dst is full, so a short count only comes with io.EOF or an error. A
// trailing partial frame from a misbehaving source is dropped.
//
// Encode does the same for a single slice of samples. Values outside
// [-1.0, 1.0] saturate for integer formats; float formats store them as is:
//
//	n := audio.Encode(dst, samples, sample.ULaw)
//
// Conversion to integers scales by 2^(bits-1), so -1.0 is the most
// negative code and +1.0 saturates at the largest one.
//
// # Format Registry
//
// The registry maps format keys to decoders and can pick one by file
// extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("drums.wav")
//
// Registry keys are case insensitive. ForPath returns ErrUnknownDecoder
// for a path with no extension or one nobody registered. Formats lists
// the registered keys, which is handy for usage messages.
//
// # Implementing a Source
//
// ReadSamples must only return whole frames and should fill as much of dst
// as it can. It returns ErrInvalidDstSize when dst cannot hold a single
// frame. The formats packages and internal/audiotest show the pattern.
//
// # Error Handling
//
// Reads return io.EOF when no more data is available. Samples returned
// together with io.EOF are valid and must be processed first:
//
//	for {
//	    n, err := r.Read(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// NewPCMReader fails with ErrUnsupportedFormat when the format, rate or
// channel count of the source cannot form a valid sample.Spec.
package audio
