// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo probes the host's native byte order.
//
// Detection serializes a known 32-bit value with binary.NativeEndian and
// inspects the first stored byte, so no typed storage is reinterpreted.
package bo
