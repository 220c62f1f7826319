// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbmonitor provides control of display attributes on Gigabyte
// monitors over their USB HID control interface.
package gbmonitor

import "fmt"

// Supported monitors expose their control interface through a Realtek
// scaler HID.
const (
	VendorID  uint16 = 0x0bda
	ProductID uint16 = 0x1100
)

// Property is a monitor feature code understood by the scaler's vendor
// protocol. Codes above 0xff are transmitted as two bytes.
type Property uint16

const (
	Brightness   Property = 0x10
	Contrast     Property = 0x12
	Sharpness    Property = 0x87
	ColorMode    Property = 0xe003
	RGBRed       Property = 0xe004
	RGBGreen     Property = 0xe005
	RGBBlue      Property = 0xe006
	LowBlueLight Property = 0xe00b
	KVMSwitch    Property = 0xe069
)

// property describes a configurable monitor property.
type property struct {
	name string
	abbr string
	min  int
	max  int
	desc string
}

var properties = map[Property]property{
	Brightness: {
		name: "brightness",
		abbr: "b",
		max:  100,
	},
	Contrast: {
		name: "contrast",
		abbr: "c",
		max:  100,
	},
	Sharpness: {
		name: "sharpness",
		abbr: "s",
		max:  10,
	},
	LowBlueLight: {
		name: "low-blue-light",
		abbr: "lb",
		max:  10,
		desc: "blue light reduction, 0 means no reduction",
	},
	KVMSwitch: {
		name: "kvm-switch",
		abbr: "kvm",
		max:  1,
		desc: "switch KVM to device 0 or 1",
	},
	ColorMode: {
		name: "color-mode",
		abbr: "cm",
		max:  3,
		desc: "0 is cool, 1 is normal, 2 is warm, 3 is user-defined",
	},
	RGBRed: {
		name: "rgb-red",
		max:  100,
		desc: "red gain, only effective when color-mode is 3",
	},
	RGBGreen: {
		name: "rgb-green",
		max:  100,
		desc: "green gain, only effective when color-mode is 3",
	},
	RGBBlue: {
		name: "rgb-blue",
		max:  100,
		desc: "blue gain, only effective when color-mode is 3",
	},
}

// propertyOrder is the order in which grouped property writes are
// applied to the device.
var propertyOrder = []Property{
	Brightness,
	Contrast,
	Sharpness,
	LowBlueLight,
	KVMSwitch,
	ColorMode,
	RGBRed,
	RGBGreen,
	RGBBlue,
}

// Properties returns all settable properties in stable application
// order.
func Properties() []Property {
	ps := make([]Property, len(propertyOrder))
	copy(ps, propertyOrder)
	return ps
}

// PropertyByName returns the property with the given long or short
// name.
func PropertyByName(name string) (Property, bool) {
	for _, p := range propertyOrder {
		prop := properties[p]
		if name == prop.name || (prop.abbr != "" && name == prop.abbr) {
			return p, true
		}
	}
	return 0, false
}

// String returns the long name of the property.
func (p Property) String() string {
	prop, ok := properties[p]
	if !ok {
		return fmt.Sprintf("Property(%#04x)", uint16(p))
	}
	return prop.name
}

// Abbr returns the short name of the property. It is empty for
// properties without one.
func (p Property) Abbr() string {
	return properties[p].abbr
}

// Range returns the inclusive bounds of values accepted for the
// property.
func (p Property) Range() (min, max int) {
	prop := properties[p]
	return prop.min, prop.max
}

// Description returns a short description of the property's effect,
// or an empty string.
func (p Property) Description() string {
	return properties[p].desc
}

// Valid reports whether p is a known property.
func (p Property) Valid() bool {
	_, ok := properties[p]
	return ok
}

// RangeError is the error returned when a property value falls outside
// the property's accepted range.
type RangeError struct {
	Property Property
	Value    int
}

func (e *RangeError) Error() string {
	min, max := e.Property.Range()
	return fmt.Sprintf("%s out of range [%d, %d]: %d", e.Property, min, max, e.Value)
}

// validate checks value against the property's range.
func (p Property) validate(value int) error {
	prop, ok := properties[p]
	if !ok {
		return fmt.Errorf("%#04x not a valid property identifier", uint16(p))
	}
	if value < prop.min || prop.max < value {
		return &RangeError{Property: p, Value: value}
	}
	return nil
}
