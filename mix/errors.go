// SPDX-License-Identifier: EPL-2.0

package mix

import "errors"

// These are raised with panic: they mark programming errors, not runtime
// conditions.
var (
	ErrInvalidFormat   = errors.New("invalid sample format")
	ErrInvalidSpec     = errors.New("invalid sample spec")
	ErrEmptyBuffer     = errors.New("empty destination buffer")
	ErrNotFrameAligned = errors.New("length is not frame aligned")
	ErrChannelMismatch = errors.New("channel count mismatch")
	ErrNilBuffer       = errors.New("nil buffer")
	ErrNilVolume       = errors.New("nil volume")
	ErrNilKernel       = errors.New("nil kernel")
)
