// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package byteshow

import "time"

// Options configures reporting.
type Options struct {
	// Order overrides the probed byte order. Zero means probe the host.
	Order Order

	// RetryDelay is the wait before writing again after ErrWouldBlock.
	// Negative returns ErrWouldBlock to the caller, zero yields the processor,
	// positive sleeps.
	RetryDelay time.Duration
}

var defaultOptions = Options{
	RetryDelay: -1,
}

type Option func(*Options)

// WithOrder reports as if the host had the given byte order.
func WithOrder(order Order) Option {
	return func(o *Options) { o.Order = order }
}

// WithRetryDelay sets Options.RetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock makes Write finish the report across ErrWouldBlock by yielding.
func WithBlock() Option { return WithRetryDelay(0) }

// WithNonblock makes Write return on the first ErrWouldBlock.
func WithNonblock() Option { return WithRetryDelay(-1) }
