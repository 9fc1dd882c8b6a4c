// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package byteshow reports the host byte order by decomposing a fixed 32-bit
// value into its four bytes.
//
// Semantics:
//   - Value is fixed at 0x12345678. Bytes are listed in memory-address order,
//     so the printed values are always 0x78, 0x56, 0x34, 0x12; only the LSB/MSB
//     labels move with the byte order.
//   - Byte order is probed once per call from the platform's native
//     serialization of Value (see internal/bo). Only little and big orders are
//     recognized; any other layout is reported as big.
//   - Output: one line per byte, "Byte N[ (LSB)| (MSB)]: 0xHEX", hex in lower
//     case without zero padding, each line newline-terminated.
//
// Writes honor io.Writer short-write contracts. iox.ErrWouldBlock from the
// destination is surfaced or retried according to the configured RetryDelay.
package byteshow

import (
	"io"
	"strconv"
	"strings"

	"code.hybscloud.com/byteshow/internal/bo"
)

// Value is the constant whose bytes are reported.
const Value uint32 = 0x12345678

// Width is the number of bytes in Value.
const Width = 4

// Order is a host byte order classification. The zero value is invalid.
type Order uint8

const (
	Little Order = 1
	Big    Order = 2
)

func (o Order) valid() bool { return o == Little || o == Big }

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// NativeOrder probes the host byte order.
func NativeOrder() Order {
	if bo.IsLittle() {
		return Little
	}
	return Big
}

// Role tags a byte as the least- or most-significant one.
type Role uint8

const (
	RoleNone Role = iota
	LSB
	MSB
)

func (r Role) String() string {
	switch r {
	case LSB:
		return "LSB"
	case MSB:
		return "MSB"
	default:
		return ""
	}
}

// Record is one byte of Value at a memory position.
type Record struct {
	Index int // 1-based, address-ascending
	Value byte
	Role  Role
}

// String renders the record without a trailing newline.
func (r Record) String() string {
	var sb strings.Builder
	r.appendTo(&sb)
	return sb.String()
}

func (r Record) appendTo(sb *strings.Builder) {
	sb.WriteString("Byte ")
	sb.WriteString(strconv.Itoa(r.Index))
	if r.Role != RoleNone {
		sb.WriteString(" (")
		sb.WriteString(r.Role.String())
		sb.WriteByte(')')
	}
	sb.WriteString(": 0x")
	sb.WriteString(strconv.FormatUint(uint64(r.Value), 16))
}

// Report lists the bytes of Value in memory-address order.
type Report struct {
	Order   Order
	Records [Width]Record
}

// NewReport decomposes Value for the given order. Any order other than
// Little is treated as Big.
func NewReport(order Order) Report {
	return decompose(Value, order)
}

func decompose(v uint32, order Order) Report {
	rep := Report{Order: order}
	little := order == Little
	for i := range Width {
		rec := Record{
			Index: i + 1,
			Value: byte(v>>(8*i)&0xFF),
		}
		switch {
		case little && i == 0, !little && i == Width-1:
			rec.Role = LSB
		case little && i == Width-1, !little && i == 0:
			rec.Role = MSB
		}
		rep.Records[i] = rec
	}
	return rep
}

// String renders all records, each followed by a newline.
func (r Report) String() string {
	var sb strings.Builder
	sb.Grow(Width * len("Byte 0 (LSB): 0xff\n"))
	for _, rec := range r.Records {
		rec.appendTo(&sb)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo implements io.WriterTo. The report is written as one buffer using
// the default non-blocking policy; use Write for other policies.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	return newReporter(w, defaultOptions).write(r)
}

// Write reports the configured byte order (the host's by default) to w.
func Write(w io.Writer, opts ...Option) (int64, error) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	if w == nil {
		return 0, ErrInvalidArgument
	}
	order := o.Order
	if order == 0 {
		order = NativeOrder()
	}
	if !order.valid() {
		return 0, ErrInvalidArgument
	}
	return newReporter(w, o).write(NewReport(order))
}
