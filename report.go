// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbmonitor

// Requests are sent as HID output reports: a zero report ID byte, a
// fixed header padded to 64 bytes, then a 0x51-framed message holding
// the feature code and value.
const (
	requestLen  = 193
	headerLen   = 65
	preambleLen = 3
)

var requestHeader = []byte{0x00, 0x40, 0xc6, 0x00, 0x00, 0x00, 0x00, 0x20, 0x00, 0x6e, 0x00, 0x80}

// buildRequest assembles the output report setting p to value. Range
// checking is the caller's responsibility.
func buildRequest(p Property, value int) []byte {
	buf := make([]byte, requestLen)
	copy(buf, requestHeader)

	msg := buf[headerLen+preambleLen:]
	var n int
	if p > 0xff {
		msg[n] = byte(p >> 8)
		n++
	}
	msg[n] = byte(p)
	n += 2 // a zero byte separates code and value
	msg[n] = byte(value)
	n++

	buf[headerLen] = 0x51
	buf[headerLen+1] = 0x81 + byte(n)
	buf[headerLen+2] = 0x03
	return buf
}
