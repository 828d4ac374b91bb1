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
	"strings"

	"golang.org/x/exp/slices"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
)

// Row is one line of a count report. Device and Subsystem are filled for the
// file and subsystem_device policies only.
type Row struct {
	Key       string
	Count     int
	Device    string
	Subsystem string
}

// Count groups corpus-relative paths under policy and drops groups seen fewer
// than minCount times. For the file policy a row's context comes from the
// first path seen with that key.
func Count(paths []string, policy corpus.GroupPolicy, minCount int) ([]Row, error) {
	counts := map[string]int{}
	rows := map[string]*Row{}
	var order []string
	for _, p := range paths {
		key, err := corpus.Classify(p, policy)
		if err != nil {
			return nil, err
		}
		counts[key]++
		if _, seen := rows[key]; seen {
			continue
		}
		row := &Row{Key: key}
		switch policy {
		case corpus.File:
			row.Device = corpus.DeviceOf(p)
			row.Subsystem = corpus.SubsystemOf(p)
		case corpus.SubsystemDevice:
			row.Subsystem, row.Device = splitSubsystemDevice(key)
		}
		rows[key] = row
		order = append(order, key)
	}

	result := []Row{}
	for _, key := range order {
		if counts[key] < minCount {
			continue
		}
		row := *rows[key]
		row.Count = counts[key]
		result = append(result, row)
	}
	slices.SortFunc(result, func(a, b Row) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if policy == corpus.SubsystemDevice {
			if a.Subsystem != b.Subsystem {
				return a.Subsystem < b.Subsystem
			}
			return a.Device < b.Device
		}
		return a.Key < b.Key
	})
	return result, nil
}

func splitSubsystemDevice(key string) (string, string) {
	idx := strings.Index(key, "/")
	if idx < 0 {
		return key, ""
	}
	return key[:idx], key[idx+1:]
}

// CountArtifacts groups IR files by their own path.
func CountArtifacts(records []extract.ArtifactRecord, policy corpus.GroupPolicy, minCount int) ([]Row, error) {
	paths := make([]string, 0, len(records))
	for _, record := range records {
		paths = append(paths, record.Path)
	}
	return Count(paths, policy, minCount)
}

// ListArtifacts returns one row per IR file keyed by the C source it was
// lowered from, ordered by subsystem, device and source.
func ListArtifacts(records []extract.ArtifactRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, Row{
			Key:       record.Source,
			Count:     1,
			Device:    corpus.DeviceOf(record.Path),
			Subsystem: corpus.SubsystemOf(record.Path),
		})
	}
	slices.SortFunc(rows, func(a, b Row) bool {
		if a.Subsystem != b.Subsystem {
			return a.Subsystem < b.Subsystem
		}
		if a.Device != b.Device {
			return a.Device < b.Device
		}
		return a.Key < b.Key
	})
	return rows
}

// Total sums the counts of rows.
func Total(rows []Row) int {
	total := 0
	for _, row := range rows {
		total += row.Count
	}
	return total
}
