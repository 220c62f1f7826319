// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbmonitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named collection of property values applied together.
type Preset map[Property]int

// LoadPresets reads a YAML preset file mapping preset names to
// property name/value pairs, for example
//
//	reading:
//	  brightness: 35
//	  low-blue-light: 8
//
// Property keys may use long or short names. Unknown properties and
// out-of-range values are errors.
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]int
	err = yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	presets := make(map[string]Preset, len(raw))
	for name, entries := range raw {
		preset := make(Preset, len(entries))
		for key, value := range entries {
			p, ok := PropertyByName(key)
			if !ok {
				return nil, fmt.Errorf("preset %q: unknown property %q", name, key)
			}
			err := p.validate(value)
			if err != nil {
				return nil, fmt.Errorf("preset %q: %w", name, err)
			}
			preset[p] = value
		}
		presets[name] = preset
	}
	return presets, nil
}

// Apply sets each property present in the preset, in the order given
// by Properties. It stops at the first write failure.
func (m *Monitor) Apply(preset Preset) error {
	for _, p := range propertyOrder {
		value, ok := preset[p]
		if !ok {
			continue
		}
		err := m.Set(p, value)
		if err != nil {
			return err
		}
	}
	return nil
}
