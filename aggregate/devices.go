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
	"path/filepath"

	"github.com/golang/glog"
	"github.com/hhatto/gocloc"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
)

var countLangs = []string{"C", "C Header"}

type DeviceRow struct {
	Device string
	// Dirs are the corpus-relative candidate directories sharing the name.
	Dirs  []string
	Files int
	// CodeLines is only filled when line counting was requested.
	CodeLines int
}

// CandidateDevices lists the devices of candidate C sources with the number of
// files found directly in their directories, largest first.
func CandidateDevices(records []extract.CandidateRecord, corpusRoot string, countLines bool) ([]DeviceRow, error) {
	devices := map[string]map[string]bool{}
	for _, rel := range extract.Paths(records, corpusRoot) {
		if !corpus.IsSource(rel) {
			continue
		}
		device := corpus.DeviceOf(rel)
		if devices[device] == nil {
			devices[device] = map[string]bool{}
		}
		devices[device][corpus.DirOf(rel)] = true
	}

	rows := []DeviceRow{}
	for device, dirSet := range devices {
		dirs := maps.Keys(dirSet)
		slices.Sort(dirs)
		row := DeviceRow{Device: device, Dirs: dirs}
		for _, dir := range dirs {
			row.Files += extract.CountFiles(filepath.Join(corpusRoot, dir))
		}
		if countLines {
			lines, err := countCodeLines(corpusRoot, dirs)
			if err != nil {
				return nil, err
			}
			row.CodeLines = lines
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b DeviceRow) bool {
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return a.Device < b.Device
	})
	return rows, nil
}

// countCodeLines sums the code lines of C files directly inside dirs.
func countCodeLines(corpusRoot string, dirs []string) (int, error) {
	direct := map[string]bool{}
	var existing []string
	for _, dir := range dirs {
		abs := filepath.Clean(filepath.Join(corpusRoot, dir))
		if corpus.IsDir(abs) {
			direct[abs] = true
			existing = append(existing, abs)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}

	clocOpts := gocloc.NewClocOptions()
	languages := gocloc.NewDefinedLanguages()
	for _, lang := range countLangs {
		if _, exists := languages.Langs[lang]; exists {
			clocOpts.IncludeLangs[lang] = struct{}{}
		}
	}
	processor := gocloc.NewProcessor(languages, clocOpts)
	result, err := processor.Analyze(existing)
	if err != nil {
		glog.Errorf("gocloc fail: %v", err)
		return 0, err
	}
	sum := 0
	for _, file := range result.Files {
		if direct[filepath.Dir(filepath.Clean(file.Name))] {
			sum += int(file.Code)
		}
	}
	return sum, nil
}
