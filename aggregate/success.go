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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
	"naive.systems/drivercorpus/options"
)

type DirStats struct {
	Dir     string
	Total   int
	Success int
}

// Rate is the percentage of files in the directory that have an artifact.
func (d DirStats) Rate() float64 {
	return percent(d.Success, d.Total)
}

// Complete reports whether every observed file has an artifact. A directory
// without files is never complete.
func (d DirStats) Complete() bool {
	return d.Total > 0 && d.Success == d.Total
}

type SuccessReport struct {
	TotalDirs    int
	CompleteDirs int
	TotalFiles   int
	SuccessFiles int
	// ByDir holds observed directories only, ordered by rate descending then
	// directory name.
	ByDir []DirStats
}

func (r SuccessReport) CompletionRate() float64 {
	return percent(r.CompleteDirs, r.TotalDirs)
}

func (r SuccessReport) FileSuccessRate() float64 {
	return percent(r.SuccessFiles, r.TotalFiles)
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100.0
}

// Correlate checks every source against hasArtifact and folds the results per
// directory. A nil candidateDirs means no filter. Otherwise only sources in
// those directories are considered, and every filtered directory counts
// toward TotalDirs, including one with no source files at all.
func Correlate(sources []string, hasArtifact func(rel string) bool, candidateDirs map[string]bool) SuccessReport {
	byDir := map[string]*DirStats{}
	for _, rel := range sources {
		dir := corpus.DirOf(rel)
		if candidateDirs != nil && !candidateDirs[dir] {
			continue
		}
		stats, ok := byDir[dir]
		if !ok {
			stats = &DirStats{Dir: dir}
			byDir[dir] = stats
		}
		stats.Total++
		if hasArtifact(rel) {
			stats.Success++
		}
	}

	var report SuccessReport
	if candidateDirs != nil {
		report.TotalDirs = len(candidateDirs)
		for dir := range candidateDirs {
			if stats, ok := byDir[dir]; ok && stats.Complete() {
				report.CompleteDirs++
			}
		}
	} else {
		report.TotalDirs = len(byDir)
		for _, stats := range byDir {
			if stats.Complete() {
				report.CompleteDirs++
			}
		}
	}

	report.ByDir = []DirStats{}
	for _, dir := range maps.Keys(byDir) {
		stats := byDir[dir]
		report.TotalFiles += stats.Total
		report.SuccessFiles += stats.Success
		report.ByDir = append(report.ByDir, *stats)
	}
	slices.SortFunc(report.ByDir, func(a, b DirStats) bool {
		if a.Rate() != b.Rate() {
			return a.Rate() > b.Rate()
		}
		return a.Dir < b.Dir
	})
	return report
}

// ArtifactChecker looks for lowered translation units under ArtifactRoot,
// which mirrors the corpus layout.
type ArtifactChecker struct {
	ArtifactRoot string
}

// HasArtifact reports whether the artifact for a corpus-relative source exists
// and is not empty.
func (c ArtifactChecker) HasArtifact(rel string) bool {
	info, err := os.Stat(filepath.Join(c.ArtifactRoot, corpus.ToArtifact(rel)))
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// SuccessRate compares the C sources under CorpusRoot/TargetSubdir with the
// artifacts under ArtifactRoot/TargetSubdir, optionally restricted to the
// directories named by CandidatesFile.
func SuccessRate(cfg *options.Config) (SuccessReport, error) {
	corpusRoot := filepath.Clean(cfg.CorpusRoot)
	artifactRoot := filepath.Clean(cfg.ArtifactRoot)
	subdir := strings.Trim(cfg.TargetSubdir, "/")

	targetRoot := filepath.Join(corpusRoot, subdir)
	if !corpus.IsDir(targetRoot) {
		return SuccessReport{}, fmt.Errorf("target directory not found: %s", targetRoot)
	}
	artifactTarget := filepath.Join(artifactRoot, subdir)
	if !corpus.IsDir(artifactTarget) {
		return SuccessReport{}, fmt.Errorf("artifact directory not found: %s", artifactTarget)
	}

	var candidateDirs map[string]bool
	if cfg.CandidatesFile != "" {
		if !corpus.IsFile(cfg.CandidatesFile) {
			return SuccessReport{}, fmt.Errorf("candidates file not found: %s", cfg.CandidatesFile)
		}
		records, err := extract.ReadCandidatesFile(cfg.CandidatesFile)
		if err != nil {
			return SuccessReport{}, err
		}
		candidateDirs = extract.CandidateDirs(records, corpusRoot)
		glog.Infof("%d candidate directories from %s", len(candidateDirs), cfg.CandidatesFile)
	}

	sources, err := extract.Sources(targetRoot, corpusRoot, cfg.IgnoreDirs)
	if err != nil {
		return SuccessReport{}, err
	}
	prefix := subdir + "/"
	inTarget := sources[:0]
	for _, rel := range sources {
		if strings.HasPrefix(rel, prefix) {
			inTarget = append(inTarget, rel)
		}
	}
	glog.Infof("%d C sources under %s", len(inTarget), targetRoot)

	checker := ArtifactChecker{ArtifactRoot: artifactRoot}
	return Correlate(inTarget, checker.HasArtifact, candidateDirs), nil
}
