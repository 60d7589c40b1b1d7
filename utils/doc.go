// SPDX-License-Identifier: EPL-2.0

// Package utils converts between normalized float32 samples and the integer
// encodings used on disk and by the mixer.
package utils
