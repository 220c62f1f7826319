// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbmonitor

import (
	"fmt"
	"io"
	"time"

	"github.com/sstallion/go-hid"
)

// DefaultSettleDelay is the pause inserted between consecutive writes.
// The scaler silently drops requests that arrive back to back.
const DefaultSettleDelay = 200 * time.Millisecond

// Monitor is an open connection to a Gigabyte monitor's HID control
// interface. It is write-only; the protocol provides no read-back of
// monitor state. A Monitor must not be used concurrently.
type Monitor struct {
	dev    hidDevice
	settle time.Duration
	wrote  bool
}

type hidDevice interface {
	io.Writer
	io.Closer
}

// Open returns a Monitor using the first HID matching the scaler's
// vendor and product ID.
func Open() (*Monitor, error) {
	dev, err := hid.OpenFirst(VendorID, ProductID)
	if err != nil {
		return nil, err
	}
	return &Monitor{dev: dev, settle: DefaultSettleDelay}, nil
}

// OpenSerial returns a Monitor using the HID with the given serial
// number. If serial is empty the first matching device is used.
func OpenSerial(serial string) (*Monitor, error) {
	if serial == "" {
		return Open()
	}
	dev, err := hid.Open(VendorID, ProductID, serial)
	if err != nil {
		return nil, err
	}
	return &Monitor{dev: dev, settle: DefaultSettleDelay}, nil
}

// Serials returns the serial numbers of connected monitors matching
// the scaler's vendor and product ID.
func Serials() ([]string, error) {
	var serials []string
	err := hid.Enumerate(VendorID, ProductID, func(info *hid.DeviceInfo) error {
		serials = append(serials, info.SerialNbr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return serials, nil
}

// Close closes the device.
func (m *Monitor) Close() error {
	return m.dev.Close()
}

// SetSettleDelay sets the pause inserted between consecutive writes on
// this Monitor. Zero disables the pause.
func (m *Monitor) SetSettleDelay(d time.Duration) {
	m.settle = d
}

// Set transmits a request setting property p to value. It returns a
// *RangeError without touching the device if value is outside the
// property's range.
func (m *Monitor) Set(p Property, value int) error {
	err := p.validate(value)
	if err != nil {
		return err
	}
	if m.wrote && m.settle > 0 {
		time.Sleep(m.settle)
	}
	_, err = m.dev.Write(buildRequest(p, value))
	if err != nil {
		return fmt.Errorf("set %s: %w", p, err)
	}
	m.wrote = true
	return nil
}

// SetBrightness sets the panel brightness of the monitor.
func (m *Monitor) SetBrightness(percent int) error {
	return m.Set(Brightness, percent)
}

// SetContrast sets the panel contrast of the monitor.
func (m *Monitor) SetContrast(percent int) error {
	return m.Set(Contrast, percent)
}

// SetSharpness sets the sharpness level of the monitor.
func (m *Monitor) SetSharpness(level int) error {
	return m.Set(Sharpness, level)
}

// SetLowBlueLight sets the blue light reduction level. Zero means no
// reduction.
func (m *Monitor) SetLowBlueLight(level int) error {
	return m.Set(LowBlueLight, level)
}

// SwitchKVM switches the monitor's KVM to the given device, 0 or 1.
func (m *Monitor) SwitchKVM(device int) error {
	return m.Set(KVMSwitch, device)
}

// SetColorMode sets the color temperature mode: 0 is cool, 1 is
// normal, 2 is warm and 3 is user-defined.
func (m *Monitor) SetColorMode(mode int) error {
	return m.Set(ColorMode, mode)
}

// SetRGB sets the red, green and blue channel gains. The gains are
// only effective when the color mode is set to user-defined.
func (m *Monitor) SetRGB(r, g, b int) error {
	for _, c := range []struct {
		p Property
		v int
	}{
		{RGBRed, r},
		{RGBGreen, g},
		{RGBBlue, b},
	} {
		err := m.Set(c.p, c.v)
		if err != nil {
			return err
		}
	}
	return nil
}
