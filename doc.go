// SPDX-License-Identifier: EPL-2.0

// Package audmix mixes several decoded audio streams into one raw PCM
// stream.
//
// # Packages
//
// The work is split across the subpackages:
//   - sample describes sample formats and stream specs
//   - volume holds per-channel volumes and turns them into linear gains
//   - mix holds the per-format mixing and volume kernels and the Mixer
//   - memblock provides the reference counted buffers the mixer reads
//   - companding wraps the A-law and u-law codecs
//   - audio and formats/... decode files into float32 sources
//
// Applications that already hold PCM in memory use package mix directly.
// Mixdown covers the common case of mixing whole files.
//
// # Quick Start
//
//	f1, _ := os.Open("voice.wav")
//	f2, _ := os.Open("music.ogg")
//	defer f1.Close()
//	defer f2.Close()
//
//	voice, _ := wav.Decoder{}.Decode(f1)
//	music, _ := vorbis.Decoder{}.Decode(f2)
//
//	pcm, err := audmix.Mixdown([]audio.Source{voice, music}, audmix.Options{
//	    Format: sample.S16LE,
//	})
//
// The files must stay open until Mixdown returns: decoders read lazily.
//
// # Volumes
//
// Options.Volumes holds one ChannelVolume per source and Options.Output is
// applied on top of all of them:
//
//	ducked := volume.New(2, volume.FromDecibel(-12))
//	pcm, err := audmix.Mixdown(srcs, audmix.Options{
//	    Format:  sample.Float32LE,
//	    Volumes: []volume.ChannelVolume{volume.Unity(2), ducked},
//	})
//
// Integer formats clamp at full scale when the sum is too loud; float32
// output is not clamped.
//
// # Limitations
//
// Sources must share a sample rate and channel count. Mixdown does not
// resample or remap channels and returns ErrRateMismatch or
// ErrChannelMismatch instead. It buffers the whole result in memory; for
// streaming, drive mix.Mixer period by period the way Mixdown does.
//
// # Writing the Result
//
// Package wav wraps the returned bytes in a WAV container:
//
//	w, _ := wav.NewWriter(out, sample.Spec{Format: sample.S16LE, Rate: voice.SampleRate(), Channels: voice.Channels()})
//	w.Write(pcm)
//	w.Close()
//
// The examples/mixdown command does all of the above from the command line.
package audmix
