// SPDX-License-Identifier: EPL-2.0

// Package memblock holds audio data in reference counted blocks.
//
// The mixer never owns sample memory. It Acquires a view of each input for
// the duration of a call and Releases it on every exit path. Block counts
// outstanding views so misuse (release without acquire, freeing an acquired
// block) panics instead of corrupting audio.
//
//	blk := memblock.New(pcm)
//	defer blk.Unref()
//
//	data := blk.Acquire()
//	// read data
//	blk.Release()
//
// # Chunks
//
// A Chunk is a window into a Block and is what the mixer is handed as a
// mix.Buffer:
//
//	c := memblock.Chunk{Block: blk, Index: 0, Length: 4096}
//	streams := []mix.StreamInput{{Buffer: c, Volume: volume.Unity(2)}}
//
// Writers go through Writable, which clears the block's silence flag.
// Silence fills a chunk with the silence pattern of a format and, when the
// chunk covers the whole block, marks the block silent so ApplyVolume can
// skip it.
package memblock
