/*
NaiveSystems Analyze - A tool for static code analysis
Copyright (C) 2023  Naive Systems Ltd.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package aggregate

import (
	"reflect"
	"testing"

	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
)

func TestCount(t *testing.T) {
	for _, testCase := range [...]struct {
		name     string
		paths    []string
		policy   corpus.GroupPolicy
		minCount int
		expected []Row
	}{
		{
			name:     "file keeps context",
			paths:    []string{"a/b/f1.c", "a/b/f1.c", "a/c/f2.c"},
			policy:   corpus.File,
			minCount: 1,
			expected: []Row{
				{Key: "a/b/f1.c", Count: 2, Device: "b", Subsystem: "a"},
				{Key: "a/c/f2.c", Count: 1, Device: "c", Subsystem: "a"},
			},
		},
		{
			name:     "threshold",
			paths:    []string{"a/b/f1.c", "a/b/f1.c", "a/c/f2.c"},
			policy:   corpus.File,
			minCount: 2,
			expected: []Row{{Key: "a/b/f1.c", Count: 2, Device: "b", Subsystem: "a"}},
		},
		{
			name:     "device",
			paths:    []string{"drivers/net/eth/a.c", "drivers/usb/eth/b.c", "drivers/usb/core/c.c"},
			policy:   corpus.Device,
			minCount: 1,
			expected: []Row{{Key: "eth", Count: 2}, {Key: "core", Count: 1}},
		},
		{
			name:     "dir",
			paths:    []string{"drivers/net/eth/a.c", "drivers/usb/core/c.c", "drivers/usb/core/d.c", "top.c"},
			policy:   corpus.Dir,
			minCount: 1,
			expected: []Row{{Key: "drivers/usb/core", Count: 2}, {Key: "", Count: 1}, {Key: "drivers/net/eth", Count: 1}},
		},
		{
			name:     "subsystem outside drivers",
			paths:    []string{"fs/ext4/inode.c", "drivers/gpu/drm/x.c", "drivers/gpu/host1x/y.c"},
			policy:   corpus.Subsystem,
			minCount: 1,
			expected: []Row{{Key: "gpu", Count: 2}, {Key: "fs", Count: 1}},
		},
		{
			name:     "subsystem device splits the key",
			paths:    []string{"drivers/net/eth/a.c", "drivers/usb/core/b.c", "drivers/usb/core/c.c"},
			policy:   corpus.SubsystemDevice,
			minCount: 1,
			expected: []Row{
				{Key: "usb/core", Count: 2, Subsystem: "usb", Device: "core"},
				{Key: "net/eth", Count: 1, Subsystem: "net", Device: "eth"},
			},
		},
		{
			name:     "subsystem device ties order by subsystem first",
			paths:    []string{"drivers/a-b/x/f.c", "drivers/a/x/f.c"},
			policy:   corpus.SubsystemDevice,
			minCount: 1,
			expected: []Row{
				{Key: "a/x", Count: 1, Subsystem: "a", Device: "x"},
				{Key: "a-b/x", Count: 1, Subsystem: "a-b", Device: "x"},
			},
		},
		{
			name:     "empty",
			policy:   corpus.File,
			minCount: 1,
			expected: []Row{},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			rows, err := Count(testCase.paths, testCase.policy, testCase.minCount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(rows, testCase.expected) {
				t.Errorf("unexpected result for %v. got: %v. expected: %v.", testCase.paths, rows, testCase.expected)
			}
			again, _ := Count(testCase.paths, testCase.policy, testCase.minCount)
			if !reflect.DeepEqual(rows, again) {
				t.Errorf("count is not deterministic. first: %v. second: %v.", rows, again)
			}
		})
	}
}

func TestCountInvalidPolicy(t *testing.T) {
	if _, err := Count([]string{"a.c"}, corpus.GroupPolicy(42), 1); err == nil {
		t.Errorf("expected an error for an unknown policy")
	}
}

func TestArtifactRows(t *testing.T) {
	records := []extract.ArtifactRecord{
		{Path: "drivers/usb/core/hub_symbolic.ll", Source: "drivers/usb/core/hub.c"},
		{Path: "drivers/net/eth/foo_symbolic.ll", Source: "drivers/net/eth/foo.c"},
		{Path: "drivers/net/eth/bar_symbolic.ll", Source: "drivers/net/eth/bar.c"},
	}
	expected := []Row{
		{Key: "drivers/net/eth/bar.c", Count: 1, Device: "eth", Subsystem: "net"},
		{Key: "drivers/net/eth/foo.c", Count: 1, Device: "eth", Subsystem: "net"},
		{Key: "drivers/usb/core/hub.c", Count: 1, Device: "core", Subsystem: "usb"},
	}
	if rows := ListArtifacts(records); !reflect.DeepEqual(rows, expected) {
		t.Errorf("unexpected list. got: %v. expected: %v.", rows, expected)
	}

	rows, err := CountArtifacts(records, corpus.Subsystem, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows, []Row{{Key: "net", Count: 2}, {Key: "usb", Count: 1}}) {
		t.Errorf("unexpected subsystem counts: %v", rows)
	}
	if total := Total(rows); total != 3 {
		t.Errorf("unexpected total: %d", total)
	}
}
