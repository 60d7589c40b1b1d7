// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must hold at least one whole frame")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrUnknownDecoder    = errors.New("no decoder registered")
)
