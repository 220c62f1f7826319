// Copyright ©2024 The gbmonitor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/nnamua/gbmonitor"
)

func parse(t *testing.T, args ...string) map[gbmonitor.Property]*setting {
	t.Helper()
	fs := flag.NewFlagSet("gbmonitor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	settings := registerProperties(fs)
	err := fs.Parse(args)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return settings
}

func TestParseFlags(t *testing.T) {
	settings := parse(t, "-b", "50", "--contrast", "40", "-lb", "3", "-kvm", "1")
	want := map[gbmonitor.Property]int{
		gbmonitor.Brightness:   50,
		gbmonitor.Contrast:     40,
		gbmonitor.LowBlueLight: 3,
		gbmonitor.KVMSwitch:    1,
	}
	for _, p := range gbmonitor.Properties() {
		s := settings[p]
		v, ok := want[p]
		if s.set != ok {
			t.Errorf("%s: got set=%t, want %t", p, s.set, ok)
			continue
		}
		if ok && s.value != v {
			t.Errorf("%s: got %d, want %d", p, s.value, v)
		}
	}
}

func TestParseFlagSpellings(t *testing.T) {
	// Long and short spellings share one setting; the last one wins.
	settings := parse(t, "-b", "50", "--brightness", "70")
	s := settings[gbmonitor.Brightness]
	if !s.set || s.value != 70 {
		t.Errorf("got set=%t value=%d, want set=true value=70", s.set, s.value)
	}
}

func TestParseFlagErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"-b", "101"}, want: "within range [0, 100]"},
		{args: []string{"--sharpness", "-1"}, want: "within range [0, 10]"},
		{args: []string{"-kvm", "2"}, want: "within range [0, 1]"},
		{args: []string{"-cm", "4"}, want: "within range [0, 3]"},
		{args: []string{"--rgb-red", "1000"}, want: "within range [0, 100]"},
		{args: []string{"-b", "bright"}, want: "valid integer"},
	}
	for _, test := range tests {
		fs := flag.NewFlagSet("gbmonitor", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		registerProperties(fs)
		err := fs.Parse(test.args)
		if err == nil {
			t.Errorf("expected parse error for %q", test.args)
			continue
		}
		if !strings.Contains(err.Error(), test.want) {
			t.Errorf("unexpected error for %q: got %v, want substring %q", test.args, err, test.want)
		}
	}
}

func TestResolve(t *testing.T) {
	settings := parse(t, "-b", "70")
	preset := gbmonitor.Preset{
		gbmonitor.Brightness:   35,
		gbmonitor.LowBlueLight: 8,
	}
	values := resolve(preset, settings)
	want := map[gbmonitor.Property]int{
		gbmonitor.Brightness:   70, // explicit flag beats preset
		gbmonitor.LowBlueLight: 8,
	}
	if len(values) != len(want) {
		t.Fatalf("unexpected number of values: got %d, want %d", len(values), len(want))
	}
	for p, v := range want {
		if values[p] != v {
			t.Errorf("%s: got %d, want %d", p, values[p], v)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	settings := parse(t)
	values := resolve(nil, settings)
	if len(values) != 0 {
		t.Errorf("unexpected values with no flags and no preset: %v", values)
	}
}
