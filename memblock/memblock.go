// SPDX-License-Identifier: EPL-2.0

package memblock

import (
	"fmt"
	"sync/atomic"

	"github.com/ik5/audmix/sample"
)

// Block is a reference counted byte buffer. Readers Acquire a view of the
// data and must Release it when done; the data must not be replaced while
// any view is outstanding.
type Block struct {
	data     []byte
	refs     atomic.Int32
	acquired atomic.Int32
	silence  atomic.Bool
	readOnly bool
}

// New wraps data in a Block with one reference held by the caller.
func New(data []byte) *Block {
	b := &Block{data: data}
	b.refs.Store(1)
	return b
}

// NewReadOnly is New for data that no writer may touch.
func NewReadOnly(data []byte) *Block {
	b := New(data)
	b.readOnly = true
	return b
}

// NewSilence allocates length bytes of silence in format f and marks the
// block as silent.
func NewSilence(f sample.Format, length int) *Block {
	data := make([]byte, length)
	sample.FillSilence(data, f)

	b := New(data)
	b.silence.Store(true)
	return b
}

// Len returns the size of the block in bytes.
func (b *Block) Len() int { return len(b.data) }

// Ref takes an additional reference.
func (b *Block) Ref() *Block {
	if b.refs.Add(1) <= 1 {
		panic(fmt.Errorf("%w: ref on freed block", ErrRefCount))
	}
	return b
}

// Unref drops a reference. The data is released when the last reference
// goes away.
func (b *Block) Unref() {
	n := b.refs.Add(-1)
	if n < 0 {
		panic(fmt.Errorf("%w: unref on freed block", ErrRefCount))
	}
	if n == 0 {
		if b.acquired.Load() != 0 {
			panic(fmt.Errorf("%w: freed while acquired", ErrRefCount))
		}
		b.data = nil
	}
}

// Refs returns the current reference count.
func (b *Block) Refs() int { return int(b.refs.Load()) }

// Acquire returns the block data. The slice is valid until the matching
// Release.
func (b *Block) Acquire() []byte {
	if b.refs.Load() <= 0 {
		panic(fmt.Errorf("%w: acquire on freed block", ErrRefCount))
	}
	b.acquired.Add(1)
	return b.data
}

// Release ends a view obtained from Acquire.
func (b *Block) Release() {
	if b.acquired.Add(-1) < 0 {
		panic(fmt.Errorf("%w: release without acquire", ErrRefCount))
	}
}

// Acquired returns the number of outstanding views.
func (b *Block) Acquired() int { return int(b.acquired.Load()) }

// IsSilence reports whether the block is known to hold only silence.
func (b *Block) IsSilence() bool { return b.silence.Load() }

// SetSilence records whether the block holds only silence. Writers that
// change the data must clear the flag.
func (b *Block) SetSilence(v bool) { b.silence.Store(v) }

// IsReadOnly reports whether the block refuses writers.
func (b *Block) IsReadOnly() bool { return b.readOnly }
