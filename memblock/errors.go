// SPDX-License-Identifier: EPL-2.0

package memblock

import "errors"

var (
	ErrRefCount   = errors.New("memblock reference count violated")
	ErrOutOfRange = errors.New("chunk out of block range")
	ErrReadOnly   = errors.New("memblock is read only")
)
