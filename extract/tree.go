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

package extract

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/exp/slices"
	"naive.systems/drivercorpus/corpus"
)

type ArtifactRecord struct {
	// Path is relative to the strip root given to Artifacts.
	Path string
	// Source is the translation unit the artifact was lowered from.
	Source string
}

// walkFiles yields regular files under root whose name has the given suffix.
// A missing root yields nothing and unreadable subtrees are skipped.
func walkFiles(root, suffix string, visit func(path string)) {
	if _, err := os.Stat(root); err != nil {
		glog.V(1).Infof("skipping missing directory %s", root)
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			glog.Warningf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			visit(path)
		}
		return nil
	})
	if err != nil {
		glog.Warningf("walking %s: %v", root, err)
	}
}

// Artifacts lists IR files under root, sorted by path.
func Artifacts(root, stripRoot string) []ArtifactRecord {
	var records []ArtifactRecord
	walkFiles(root, corpus.IRSuffix, func(path string) {
		rel := corpus.RelPath(path, stripRoot)
		records = append(records, ArtifactRecord{Path: rel, Source: corpus.ToSource(rel)})
	})
	slices.SortFunc(records, func(a, b ArtifactRecord) bool {
		return a.Path < b.Path
	})
	return records
}

// Sources lists C files under root relative to corpusRoot, sorted, without the
// ones matching an ignore pattern.
func Sources(root, corpusRoot string, ignorePatterns []string) ([]string, error) {
	if err := corpus.ValidatePatterns(ignorePatterns); err != nil {
		return nil, err
	}
	var sources []string
	walkFiles(root, corpus.SourceSuffix, func(path string) {
		rel := corpus.RelPath(path, corpusRoot)
		// Patterns are validated above, so the error is always nil here.
		if ignored, _ := corpus.MatchIgnorePatterns(ignorePatterns, rel); ignored {
			return
		}
		sources = append(sources, rel)
	})
	slices.Sort(sources)
	return sources, nil
}

// CountFiles counts regular files directly inside dir. A missing directory
// counts as empty.
func CountFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			count++
			continue
		}
		// symlinks to regular files count too
		if entry.Type()&fs.ModeSymlink != 0 && corpus.IsFile(filepath.Join(dir, entry.Name())) {
			count++
		}
	}
	return count
}
