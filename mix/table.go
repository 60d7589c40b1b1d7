// SPDX-License-Identifier: EPL-2.0

package mix

import (
	"fmt"

	"github.com/ik5/audmix/companding"
	"github.com/ik5/audmix/sample"
	"github.com/ik5/audmix/volume"
)

// Table maps each sample format to its kernels and to the gain
// representation those kernels consume.
//
// Table is not safe for concurrent mutation. Install replacement kernels
// before mixing starts, or quiesce every caller first; reading a Table from
// many goroutines is fine.
type Table struct {
	mix    [sample.FormatMax]Kernel
	volume [sample.FormatMax]VolumeKernel
	rep    [sample.FormatMax]volume.Representation
}

// NewTable builds a table of the built in kernels. Native and reversed
// byte order kernels are bound here, once, according to the host. A nil
// compander selects the matching G.711 codec.
func NewTable(alaw, ulaw companding.Compander) *Table {
	if alaw == nil {
		alaw = companding.ALaw{}
	}
	if ulaw == nil {
		ulaw = companding.ULaw{}
	}

	t := &Table{}

	t.mix[sample.U8] = mixU8
	t.mix[sample.ALaw] = mixCompanded(alaw)
	t.mix[sample.ULaw] = mixCompanded(ulaw)
	t.mix[sample.S16NE] = mixS16[nativeOrder]
	t.mix[sample.S16RE] = mixS16[swappedOrder]
	t.mix[sample.S32NE] = mixS32[nativeOrder]
	t.mix[sample.S32RE] = mixS32[swappedOrder]
	t.mix[sample.S24NE] = mixS24[nativeOrder]
	t.mix[sample.S24RE] = mixS24[swappedOrder]
	t.mix[sample.S24In32NE] = mixS24In32[nativeOrder]
	t.mix[sample.S24In32RE] = mixS24In32[swappedOrder]
	t.mix[sample.Float32NE] = mixFloat32[nativeOrder]
	t.mix[sample.Float32RE] = mixFloat32[swappedOrder]

	t.volume[sample.U8] = volumeU8
	t.volume[sample.ALaw] = volumeCompanded(alaw)
	t.volume[sample.ULaw] = volumeCompanded(ulaw)
	t.volume[sample.S16NE] = volumeS16[nativeOrder]
	t.volume[sample.S16RE] = volumeS16[swappedOrder]
	t.volume[sample.S32NE] = volumeS32[nativeOrder]
	t.volume[sample.S32RE] = volumeS32[swappedOrder]
	t.volume[sample.S24NE] = volumeS24[nativeOrder]
	t.volume[sample.S24RE] = volumeS24[swappedOrder]
	t.volume[sample.S24In32NE] = volumeS24In32[nativeOrder]
	t.volume[sample.S24In32RE] = volumeS24In32[swappedOrder]
	t.volume[sample.Float32NE] = volumeFloat32[nativeOrder]
	t.volume[sample.Float32RE] = volumeFloat32[swappedOrder]

	for f := range sample.FormatMax {
		t.rep[f] = volume.Fixed
		if f.IsFloat() {
			t.rep[f] = volume.Float
		}
	}

	return t
}

func checkFormat(f sample.Format) {
	if !f.Valid() {
		panic(fmt.Errorf("%w: %s", ErrInvalidFormat, f))
	}
}

// MixKernel returns the kernel bound to f.
func (t *Table) MixKernel(f sample.Format) Kernel {
	checkFormat(f)
	return t.mix[f]
}

// SetMixKernel binds k to f, replacing the current kernel.
func (t *Table) SetMixKernel(f sample.Format, k Kernel) {
	checkFormat(f)
	if k == nil {
		panic(fmt.Errorf("%w: %s", ErrNilKernel, f))
	}
	t.mix[f] = k
}

// VolumeKernel returns the in-place volume kernel bound to f.
func (t *Table) VolumeKernel(f sample.Format) VolumeKernel {
	checkFormat(f)
	return t.volume[f]
}

// SetVolumeKernel binds k to f, replacing the current kernel.
func (t *Table) SetVolumeKernel(f sample.Format, k VolumeKernel) {
	checkFormat(f)
	if k == nil {
		panic(fmt.Errorf("%w: %s", ErrNilKernel, f))
	}
	t.volume[f] = k
}

// Representation returns the gain representation the kernels of f consume.
func (t *Table) Representation(f sample.Format) volume.Representation {
	checkFormat(f)
	return t.rep[f]
}

// DefaultTable is the process wide table behind the package level
// functions.
var DefaultTable = NewTable(nil, nil)

// GetMixKernel returns the kernel DefaultTable binds to f.
func GetMixKernel(f sample.Format) Kernel { return DefaultTable.MixKernel(f) }

// SetMixKernel replaces the kernel DefaultTable binds to f. It must not
// race with Mix calls.
func SetMixKernel(f sample.Format, k Kernel) { DefaultTable.SetMixKernel(f, k) }

// GetVolumeKernel returns the volume kernel DefaultTable binds to f.
func GetVolumeKernel(f sample.Format) VolumeKernel { return DefaultTable.VolumeKernel(f) }

// SetVolumeKernel replaces the volume kernel DefaultTable binds to f. It
// must not race with ApplyVolume calls.
func SetVolumeKernel(f sample.Format, k VolumeKernel) { DefaultTable.SetVolumeKernel(f, k) }
