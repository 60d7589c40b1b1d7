// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format identifies the on-the-wire encoding of a single sample.
type Format int

// Invalid marks an unknown or unparsable format.
const Invalid Format = -1

const (
	U8        Format = iota // unsigned 8-bit, biased by 0x80
	ALaw                    // 8-bit G.711 A-law
	ULaw                    // 8-bit G.711 u-law
	S16LE                   // signed 16-bit little endian
	S16BE                   // signed 16-bit big endian
	Float32LE               // IEEE 754 float32 little endian, [-1.0, 1.0]
	Float32BE               // IEEE 754 float32 big endian, [-1.0, 1.0]
	S32LE                   // signed 32-bit little endian
	S32BE                   // signed 32-bit big endian
	S24LE                   // signed 24-bit packed in 3 bytes, little endian
	S24BE                   // signed 24-bit packed in 3 bytes, big endian
	S24In32LE               // signed 24-bit in the low bits of a 32-bit LE container
	S24In32BE               // signed 24-bit in the low bits of a 32-bit BE container

	// FormatMax is the number of valid formats. It is not a format.
	FormatMax
)

// HostLittleEndian reports the byte order of the running machine.
var HostLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// Native and reversed aliases, resolved once from the host byte order.
var (
	S16NE, S16RE         Format
	Float32NE, Float32RE Format
	S32NE, S32RE         Format
	S24NE, S24RE         Format
	S24In32NE, S24In32RE Format
)

func init() {
	if HostLittleEndian {
		S16NE, S16RE = S16LE, S16BE
		Float32NE, Float32RE = Float32LE, Float32BE
		S32NE, S32RE = S32LE, S32BE
		S24NE, S24RE = S24LE, S24BE
		S24In32NE, S24In32RE = S24In32LE, S24In32BE
		return
	}

	S16NE, S16RE = S16BE, S16LE
	Float32NE, Float32RE = Float32BE, Float32LE
	S32NE, S32RE = S32BE, S32LE
	S24NE, S24RE = S24BE, S24LE
	S24In32NE, S24In32RE = S24In32BE, S24In32LE
}

type formatInfo struct {
	name    string
	size    int
	silence byte
	little  bool
}

var formats = [FormatMax]formatInfo{
	U8:        {name: "u8", size: 1, silence: 0x80},
	ALaw:      {name: "aLaw", size: 1, silence: 0xd5},
	ULaw:      {name: "uLaw", size: 1, silence: 0xff},
	S16LE:     {name: "s16le", size: 2, little: true},
	S16BE:     {name: "s16be", size: 2},
	Float32LE: {name: "float32le", size: 4, little: true},
	Float32BE: {name: "float32be", size: 4},
	S32LE:     {name: "s32le", size: 4, little: true},
	S32BE:     {name: "s32be", size: 4},
	S24LE:     {name: "s24le", size: 3, little: true},
	S24BE:     {name: "s24be", size: 3},
	S24In32LE: {name: "s24-32le", size: 4, little: true},
	S24In32BE: {name: "s24-32be", size: 4},
}

// Valid reports whether f is one of the enumerated formats.
func (f Format) Valid() bool {
	return f >= 0 && f < FormatMax
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("invalid(%d)", int(f))
	}
	return formats[f].name
}

// SampleSize returns the width of one sample in bytes, or 0 for an invalid format.
func (f Format) SampleSize() int {
	if !f.Valid() {
		return 0
	}
	return formats[f].size
}

// Silence returns the byte that encodes digital zero. Every byte of a
// silent buffer has this value.
func (f Format) Silence() byte {
	if !f.Valid() {
		return 0
	}
	return formats[f].silence
}

// IsLittleEndian reports whether multi-byte samples are stored least
// significant byte first. Single byte formats report false.
func (f Format) IsLittleEndian() bool {
	return f.Valid() && formats[f].little
}

// IsNative reports whether samples of f can be loaded without byte swapping
// on this host. Single byte formats are always native.
func (f Format) IsNative() bool {
	if !f.Valid() {
		return false
	}
	if formats[f].size == 1 {
		return true
	}
	return formats[f].little == HostLittleEndian
}

// IsFloat reports whether f carries IEEE 754 samples.
func (f Format) IsFloat() bool {
	return f == Float32LE || f == Float32BE
}

// Swapped returns the same encoding in the opposite byte order. Single byte
// formats are returned unchanged.
func (f Format) Swapped() Format {
	switch f {
	case S16LE, Float32LE, S32LE, S24LE, S24In32LE:
		return f + 1
	case S16BE, Float32BE, S32BE, S24BE, S24In32BE:
		return f - 1
	}
	return f
}

var aliases = map[string]Format{
	"u8":        U8,
	"alaw":      ALaw,
	"a-law":     ALaw,
	"ulaw":      ULaw,
	"u-law":     ULaw,
	"mulaw":     ULaw,
	"s16le":     S16LE,
	"s16be":     S16BE,
	"float32le": Float32LE,
	"float32be": Float32BE,
	"f32le":     Float32LE,
	"f32be":     Float32BE,
	"s32le":     S32LE,
	"s32be":     S32BE,
	"s24le":     S24LE,
	"s24be":     S24BE,
	"s24-32le":  S24In32LE,
	"s24-32be":  S24In32BE,
	"s24_32le":  S24In32LE,
	"s24_32be":  S24In32BE,
}

// ParseFormat resolves a format name such as "s16le", "float32be" or "ulaw".
// Names ending in "ne" or "re" resolve to the host native or reversed
// byte order.
func ParseFormat(name string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if f, ok := aliases[key]; ok {
		return f, nil
	}

	if strings.HasSuffix(key, "ne") || strings.HasSuffix(key, "re") {
		base := key[:len(key)-2]
		f, ok := aliases[base+"le"]
		if !ok {
			return Invalid, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}

		wantLE := HostLittleEndian == strings.HasSuffix(key, "ne")
		if !wantLE {
			return f.Swapped(), nil
		}
		return f, nil
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
