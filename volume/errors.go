// SPDX-License-Identifier: EPL-2.0

package volume

import "errors"

var (
	ErrInvalidChannels = errors.New("channel count out of range")
)
