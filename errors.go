// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byteshow

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrInvalidArgument reports a nil writer or an unknown byte order.
var ErrInvalidArgument = errors.New("byteshow: invalid argument")

// These are provided as package-level aliases so callers can reference the
// semantic control-flow errors without importing iox directly.
var (
	// ErrWouldBlock means the destination cannot accept more bytes without waiting.
	//
	// The returned count is the number of report bytes the destination took.
	// Write does not resume across calls; set RetryDelay (or WithBlock) to have
	// it wait and finish the report instead.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means the destination accepted the bytes and more completions
	// will follow. Write keeps going while bytes are accepted; ErrMore with
	// nothing accepted ends the write with io.ErrNoProgress.
	ErrMore = iox.ErrMore
)
