// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"encoding/binary"
	"math/bits"

	"github.com/ik5/audmix/sample"
)

// byteOrder loads and stores raw sample words. Kernels are instantiated
// once per order; the table binds nativeOrder to the host byte order tags
// and swappedOrder to the opposite ones.
type byteOrder interface {
	Uint16(b []byte) uint16
	PutUint16(b []byte, v uint16)
	Uint24(b []byte) uint32
	PutUint24(b []byte, v uint32)
	Uint32(b []byte) uint32
	PutUint32(b []byte, v uint32)
}

type nativeOrder struct{}

func (nativeOrder) Uint16(b []byte) uint16       { return binary.NativeEndian.Uint16(b) }
func (nativeOrder) PutUint16(b []byte, v uint16) { binary.NativeEndian.PutUint16(b, v) }
func (nativeOrder) Uint32(b []byte) uint32       { return binary.NativeEndian.Uint32(b) }
func (nativeOrder) PutUint32(b []byte, v uint32) { binary.NativeEndian.PutUint32(b, v) }

func (nativeOrder) Uint24(b []byte) uint32 {
	if sample.HostLittleEndian {
		return uint24le(b)
	}
	return uint24be(b)
}

func (nativeOrder) PutUint24(b []byte, v uint32) {
	if sample.HostLittleEndian {
		putUint24le(b, v)
		return
	}
	putUint24be(b, v)
}

type swappedOrder struct{}

func (swappedOrder) Uint16(b []byte) uint16 {
	return bits.ReverseBytes16(binary.NativeEndian.Uint16(b))
}

func (swappedOrder) PutUint16(b []byte, v uint16) {
	binary.NativeEndian.PutUint16(b, bits.ReverseBytes16(v))
}

func (swappedOrder) Uint32(b []byte) uint32 {
	return bits.ReverseBytes32(binary.NativeEndian.Uint32(b))
}

func (swappedOrder) PutUint32(b []byte, v uint32) {
	binary.NativeEndian.PutUint32(b, bits.ReverseBytes32(v))
}

func (swappedOrder) Uint24(b []byte) uint32 {
	if sample.HostLittleEndian {
		return uint24be(b)
	}
	return uint24le(b)
}

func (swappedOrder) PutUint24(b []byte, v uint32) {
	if sample.HostLittleEndian {
		putUint24be(b, v)
		return
	}
	putUint24le(b, v)
}

func uint24le(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func uint24be(b []byte) uint32 {
	_ = b[2]
	return uint32(b[2]) | uint32(b[1])<<8 | uint32(b[0])<<16
}

func putUint24le(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

func putUint24be(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}
