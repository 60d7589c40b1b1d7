// SPDX-License-Identifier: EPL-2.0

package audmix

import "errors"

var (
	// ErrNoSources indicates Mixdown was called without any source
	ErrNoSources = errors.New("no sources to mix")

	// ErrRateMismatch indicates sources with different sample rates
	ErrRateMismatch = errors.New("sources have different sample rates")

	// ErrChannelMismatch indicates sources, or volumes, with different channel counts
	ErrChannelMismatch = errors.New("sources have different channel counts")

	// ErrVolumeCount indicates Options.Volumes does not have one entry per source
	ErrVolumeCount = errors.New("volume count does not match source count")
)
