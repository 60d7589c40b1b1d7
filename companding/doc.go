// SPDX-License-Identifier: EPL-2.0

// Package companding exposes the two G.711 codecs as expand/compress
// primitives for the mixing kernels. The tables come from
// github.com/zaf/g711.
package companding
