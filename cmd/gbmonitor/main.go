// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gbmonitor sets display attributes on Gigabyte monitors over USB.
//
// Each property flag is optional and independent; omitted properties
// are left untouched. Values outside the documented ranges are usage
// errors. Properties named by a preset are applied too, with explicit
// flags taking precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/sstallion/go-hid"

	"github.com/nnamua/gbmonitor"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	settings := registerProperties(flag.CommandLine)
	list := flag.Bool("list", false, "list connected monitors and exit")
	ser := flag.String("serial", "", "serial number of the monitor to control")
	presetName := flag.String("preset", "", "name of a preset to apply before explicit flags")
	presetFile := flag.String("presets", defaultPresetPath(), "preset file")
	delay := flag.Duration("delay", gbmonitor.DefaultSettleDelay, "settle delay between writes")
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "enable verbose logging")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.Parse()

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	err := hid.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize HID: %v\n", err)
		return 1
	}
	defer hid.Exit()

	if *list {
		return listMonitors()
	}

	var preset gbmonitor.Preset
	if *presetName != "" {
		presets, err := gbmonitor.LoadPresets(*presetFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load presets: %v\n", err)
			return 1
		}
		preset = presets[*presetName]
		if preset == nil {
			fmt.Fprintf(os.Stderr, "%q is not a known preset\n", *presetName)
			if names := presetNames(presets); len(names) != 0 {
				fmt.Fprintf(os.Stderr, "available: %s\n", strings.Join(names, ", "))
			}
			return 2
		}
		log.Debugf("loaded preset %q from %s", *presetName, *presetFile)
	}

	values := resolve(preset, settings)
	if len(values) == 0 {
		fmt.Fprintln(os.Stderr, "no property to set")
		flag.Usage()
		return 2
	}

	mon, err := gbmonitor.OpenSerial(*ser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open device: %v\n", err)
		if *ser != "" {
			serials, err := gbmonitor.Serials()
			if err == nil && len(serials) != 0 {
				fmt.Fprintf(os.Stderr, "available: %s\n", strings.Join(serials, ", "))
			}
		}
		return 1
	}
	defer mon.Close()
	mon.SetSettleDelay(*delay)

	failed := false
	for _, p := range gbmonitor.Properties() {
		value, ok := values[p]
		if !ok {
			continue
		}
		log.Debugf("setting %s to %d", p, value)
		err = mon.Set(p, value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to set %s: %v\n", p, err)
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// setting is a flag value for one monitor property. It rejects
// non-integer and out-of-range input during flag parsing.
type setting struct {
	prop  gbmonitor.Property
	value int
	set   bool
}

func (s *setting) String() string {
	if s == nil || !s.set {
		return ""
	}
	return strconv.Itoa(s.value)
}

func (s *setting) Set(arg string) error {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return errors.New("must be a valid integer")
	}
	min, max := s.prop.Range()
	if v < min || max < v {
		return fmt.Errorf("must be within range [%d, %d]", min, max)
	}
	s.value = v
	s.set = true
	return nil
}

// registerProperties adds one flag per monitor property to fs, under
// the property's long name and, where present, its short name.
func registerProperties(fs *flag.FlagSet) map[gbmonitor.Property]*setting {
	settings := make(map[gbmonitor.Property]*setting)
	for _, p := range gbmonitor.Properties() {
		s := &setting{prop: p}
		settings[p] = s
		min, max := p.Range()
		usage := fmt.Sprintf("set %s [%d-%d]", p, min, max)
		if desc := p.Description(); desc != "" {
			usage += ": " + desc
		}
		fs.Var(s, p.String(), usage)
		if abbr := p.Abbr(); abbr != "" {
			fs.Var(s, abbr, "shorthand for -"+p.String())
		}
	}
	return settings
}

// resolve merges preset values with explicitly set flags, flags
// winning.
func resolve(preset gbmonitor.Preset, settings map[gbmonitor.Property]*setting) map[gbmonitor.Property]int {
	values := make(map[gbmonitor.Property]int, len(preset))
	for p, v := range preset {
		values[p] = v
	}
	for p, s := range settings {
		if s.set {
			values[p] = s.value
		}
	}
	return values
}

func listMonitors() int {
	n := 0
	err := hid.Enumerate(gbmonitor.VendorID, gbmonitor.ProductID, func(info *hid.DeviceInfo) error {
		fmt.Printf("%s  serial:%s  product:%s\n", info.Path, info.SerialNbr, info.ProductStr)
		n++
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enumerate devices: %v\n", err)
		return 1
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "no monitor found")
		return 1
	}
	return 0
}

func presetNames(presets map[string]gbmonitor.Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultPresetPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gbmonitor", "presets.yaml")
}
