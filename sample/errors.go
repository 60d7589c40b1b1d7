// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrUnknownFormat   = errors.New("unknown sample format")
	ErrInvalidFormat   = errors.New("invalid sample format")
	ErrInvalidRate     = errors.New("invalid sample rate")
	ErrInvalidChannels = errors.New("invalid channel count")
)
