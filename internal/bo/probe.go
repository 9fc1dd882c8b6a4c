// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "encoding/binary"

const (
	probeValue   uint32 = 0x12345678
	probeLowByte byte   = 0x78
)

// Layout returns v as the host stores it, lowest address first.
func Layout(v uint32) (b [4]byte) {
	binary.NativeEndian.PutUint32(b[:], v)
	return b
}

// IsLittle reports whether the first stored byte of 0x12345678 is its
// low-order byte. Only little and big layouts are distinguished; any other
// layout reports false.
func IsLittle() bool {
	return littleLayout(Layout(probeValue))
}

func littleLayout(b [4]byte) bool { return b[0] == probeLowByte }
