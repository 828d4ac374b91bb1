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

package normalize

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"
	"naive.systems/drivercorpus/compilecommand"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
)

// Stats tallies what happened to each raw invocation of a run.
type Stats struct {
	Accepted   int
	OutOfScope int
	Unusable   int
}

func (s Stats) Total() int {
	return s.Accepted + s.OutOfScope + s.Unusable
}

// record absorbs per-invocation failures into the tally. Errors that are
// neither scope violations nor unusable commands are returned.
func (s *Stats) record(err error) error {
	switch {
	case err == nil:
		s.Accepted++
	case errors.Is(err, ErrOutOfScope):
		glog.V(1).Infof("skipped: %v", err)
		s.OutOfScope++
	case errors.Is(err, ErrUnusable):
		glog.V(1).Infof("skipped: %v", err)
		s.Unusable++
	default:
		return err
	}
	return nil
}

func resolveTargetDir(targetDir string) (string, error) {
	resolved := corpus.RealPath(targetDir)
	if !corpus.IsDir(resolved) {
		return "", fmt.Errorf("target directory not found: %s", resolved)
	}
	return resolved, nil
}

// FilterCompileDatabase normalizes every entry of the database at path whose
// source lies below targetDir.
func FilterCompileDatabase(path, targetDir, compiler string) ([]Invocation, Stats, error) {
	var stats Stats
	targetReal, err := resolveTargetDir(targetDir)
	if err != nil {
		return nil, stats, err
	}
	commands, err := compilecommand.ReadCompileCommandsFromFile(path)
	if err != nil {
		return nil, stats, err
	}
	invocations := []Invocation{}
	for _, cc := range commands {
		inv, convErr := FromCompileCommand(cc, targetReal, compiler)
		if err := stats.record(convErr); err != nil {
			return nil, stats, err
		}
		if convErr == nil {
			invocations = append(invocations, inv)
		}
	}
	glog.Infof("%s: %d entries, %d accepted", path, stats.Total(), stats.Accepted)
	return invocations, stats, nil
}

// ExtractFromLog finds compiler commands in build output and normalizes the
// ones whose source lies below targetDir.
func ExtractFromLog(r io.Reader, sourceRoot, targetDir, compiler string) ([]Invocation, Stats, error) {
	var stats Stats
	targetReal, err := resolveTargetDir(targetDir)
	if err != nil {
		return nil, stats, err
	}
	sourceReal := corpus.RealPath(sourceRoot)
	commands, err := extract.CompileLogCommands(r, compilerOrDefault(compiler))
	if err != nil {
		return nil, stats, err
	}
	invocations := []Invocation{}
	for _, cmd := range commands {
		inv, convErr := FromLogCommand(cmd, sourceReal, targetReal, compiler)
		if err := stats.record(convErr); err != nil {
			return nil, stats, err
		}
		if convErr == nil {
			invocations = append(invocations, inv)
		}
	}
	glog.Infof("build log: %d commands, %d accepted", stats.Total(), stats.Accepted)
	return invocations, stats, nil
}

// WithoutIgnored drops invocations whose source, taken relative to root,
// matches one of the ignore patterns.
func WithoutIgnored(invocations []Invocation, root string, patterns []string) ([]Invocation, error) {
	if len(patterns) == 0 {
		return invocations, nil
	}
	if err := corpus.ValidatePatterns(patterns); err != nil {
		return nil, err
	}
	root = corpus.RealPath(root)
	kept := invocations[:0:0]
	for _, inv := range invocations {
		ignored, _ := corpus.MatchIgnorePatterns(patterns, corpus.RelPath(inv.Source, root))
		if !ignored {
			kept = append(kept, inv)
		}
	}
	return kept, nil
}
