// SPDX-License-Identifier: EPL-2.0

package memblock

import (
	"fmt"

	"github.com/ik5/audmix/sample"
)

// Chunk is a window [Index, Index+Length) into a Block.
type Chunk struct {
	Block  *Block
	Index  int
	Length int
}

// NewChunk returns a chunk covering the whole of b.
func NewChunk(b *Block) Chunk {
	return Chunk{Block: b, Length: b.Len()}
}

// Acquire returns the bytes of the window; see Block.Acquire.
func (c Chunk) Acquire() []byte {
	if c.Index < 0 || c.Length < 0 || c.Index+c.Length > c.Block.Len() {
		panic(fmt.Errorf("%w: [%d:%d] of %d", ErrOutOfRange, c.Index, c.Index+c.Length, c.Block.Len()))
	}
	data := c.Block.Acquire()
	return data[c.Index : c.Index+c.Length : c.Index+c.Length]
}

// Release ends a view obtained from Acquire.
func (c Chunk) Release() { c.Block.Release() }

// IsSilence reports whether the underlying block is known to be silent.
func (c Chunk) IsSilence() bool { return c.Block.IsSilence() }

// Silence overwrites the window with the silence pattern of f.
func (c Chunk) Silence(f sample.Format) {
	if c.Block.IsReadOnly() {
		panic(fmt.Errorf("%w", ErrReadOnly))
	}

	data := c.Acquire()
	sample.FillSilence(data, f)
	c.Release()

	if c.Index == 0 && c.Length == c.Block.Len() {
		c.Block.SetSilence(true)
	}
}

// Writable acquires the window for writing. Writers clear the silence flag.
func (c Chunk) Writable() []byte {
	if c.Block.IsReadOnly() {
		panic(fmt.Errorf("%w", ErrReadOnly))
	}
	c.Block.SetSilence(false)
	return c.Acquire()
}
