// SPDX-License-Identifier: EPL-2.0

package sample

// FillSilence overwrites dst with the silence pattern of f.
func FillSilence(dst []byte, f Format) {
	b := f.Silence()
	if b == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		dst[i] = b
	}
}

// IsSilence reports whether every byte of data is the silence pattern of f.
func IsSilence(data []byte, f Format) bool {
	b := f.Silence()
	for _, v := range data {
		if v != b {
			return false
		}
	}
	return true
}
