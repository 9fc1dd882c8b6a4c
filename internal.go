// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byteshow

import (
	"io"
	"runtime"
	"time"
)

type reporter struct {
	wr         io.Writer
	retryDelay time.Duration
}

func newReporter(w io.Writer, o Options) *reporter {
	return &reporter{wr: w, retryDelay: o.RetryDelay}
}

// write sends the rendered report, resuming from the last accepted byte after
// short writes, ErrMore, and (when retrying is enabled) ErrWouldBlock.
func (rp *reporter) write(r Report) (int64, error) {
	if rp.wr == nil {
		return 0, ErrInvalidArgument
	}
	buf := []byte(r.String())
	var off int
	for off < len(buf) {
		n, err := rp.wr.Write(buf[off:])
		off += n
		switch err {
		case nil:
			if n == 0 {
				return int64(off), io.ErrShortWrite
			}
		case ErrMore:
			if n == 0 {
				return int64(off), io.ErrNoProgress
			}
		case ErrWouldBlock:
			if !rp.pause() {
				return int64(off), err
			}
		default:
			return int64(off), err
		}
	}
	return int64(off), nil
}

// pause waits according to retryDelay and reports whether to write again.
func (rp *reporter) pause() bool {
	switch {
	case rp.retryDelay < 0:
		return false
	case rp.retryDelay == 0:
		runtime.Gosched()
	default:
		time.Sleep(rp.retryDelay)
	}
	return true
}
