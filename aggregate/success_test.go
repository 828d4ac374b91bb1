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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"naive.systems/drivercorpus/options"
)

func hasArtifactIn(present ...string) func(string) bool {
	set := map[string]bool{}
	for _, p := range present {
		set[p] = true
	}
	return func(rel string) bool { return set[rel] }
}

func TestCorrelate(t *testing.T) {
	sources := []string{"d1/a.c", "d1/b.c", "d2/c.c"}
	report := Correlate(sources, hasArtifactIn("d1/a.c", "d1/b.c"), nil)

	assert.Equal(t, 2, report.TotalDirs)
	assert.Equal(t, 1, report.CompleteDirs)
	assert.Equal(t, 3, report.TotalFiles)
	assert.Equal(t, 2, report.SuccessFiles)
	assert.InDelta(t, 50.0, report.CompletionRate(), 1e-9)
	assert.InDelta(t, 200.0/3.0, report.FileSuccessRate(), 1e-9)
	expected := []DirStats{{Dir: "d1", Total: 2, Success: 2}, {Dir: "d2", Total: 1, Success: 0}}
	if diff := cmp.Diff(expected, report.ByDir); diff != "" {
		t.Errorf("unexpected per directory stats (-want +got):\n%s", diff)
	}
}

func TestCorrelateFilterCountsEmptyDirectories(t *testing.T) {
	sources := []string{"d1/a.c", "d1/b.c", "d2/c.c"}
	report := Correlate(sources, hasArtifactIn("d1/a.c", "d1/b.c"), map[string]bool{"d1": true, "d3": true})

	// d3 has no sources: it is in the denominator but can never be complete.
	assert.Equal(t, 2, report.TotalDirs)
	assert.Equal(t, 1, report.CompleteDirs)
	assert.InDelta(t, 50.0, report.CompletionRate(), 1e-9)
	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 2, report.SuccessFiles)
	assert.Equal(t, []DirStats{{Dir: "d1", Total: 2, Success: 2}}, report.ByDir)
}

func TestCorrelateEdgeCases(t *testing.T) {
	empty := Correlate(nil, hasArtifactIn(), nil)
	assert.Equal(t, SuccessReport{ByDir: []DirStats{}}, empty)
	assert.Zero(t, empty.CompletionRate())
	assert.Zero(t, empty.FileSuccessRate())

	filteredOut := Correlate([]string{"d1/a.c"}, hasArtifactIn("d1/a.c"), map[string]bool{})
	assert.Equal(t, 0, filteredOut.TotalDirs)
	assert.Equal(t, 0, filteredOut.TotalFiles)

	ties := Correlate([]string{"z/a.c", "z/b.c", "m/a.c", "m/b.c", "q/a.c"}, hasArtifactIn("z/a.c", "m/a.c", "q/a.c"), nil)
	var order []string
	for _, stats := range ties.ByDir {
		order = append(order, stats.Dir)
	}
	assert.Equal(t, []string{"q", "m", "z"}, order)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSuccessRate(t *testing.T) {
	root := t.TempDir()
	linux := filepath.Join(root, "linux")
	out := filepath.Join(root, "driver_out")
	writeFile(t, filepath.Join(linux, "drivers/net/eth/foo.c"), "int x;\n")
	writeFile(t, filepath.Join(linux, "drivers/net/eth/bar.c"), "int x;\n")
	writeFile(t, filepath.Join(linux, "drivers/usb/core/hub.c"), "int x;\n")
	writeFile(t, filepath.Join(out, "drivers/net/eth/foo_symbolic.ll"), "define void @f()\n")
	writeFile(t, filepath.Join(out, "drivers/net/eth/bar_symbolic.ll"), "")
	candidates := filepath.Join(root, "drivers_candidates.txt")
	writeFile(t, candidates, linux+"/drivers/net/eth/foo.c:3 (cfg:1): candidate\n")

	cfg := &options.Config{CorpusRoot: linux + "/", ArtifactRoot: out, TargetSubdir: "drivers"}
	report, err := SuccessRate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalDirs)
	assert.Equal(t, 0, report.CompleteDirs)
	assert.Equal(t, 3, report.TotalFiles)
	assert.Equal(t, 1, report.SuccessFiles)
	assert.Equal(t, []DirStats{
		{Dir: "drivers/net/eth", Total: 2, Success: 1},
		{Dir: "drivers/usb/core", Total: 1, Success: 0},
	}, report.ByDir)

	cfg.CandidatesFile = candidates
	report, err = SuccessRate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalDirs)
	assert.Equal(t, 2, report.TotalFiles)

	cfg.IgnoreDirs = options.ArrayFlags{"drivers/net/eth/bar.c"}
	report, err = SuccessRate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, report.CompleteDirs)
	assert.Equal(t, 1, report.TotalFiles)

	for _, broken := range []struct {
		mutate func(c *options.Config)
		named  string
	}{
		{func(c *options.Config) { c.TargetSubdir = "sound" }, filepath.Join(linux, "sound")},
		{func(c *options.Config) { c.ArtifactRoot = filepath.Join(root, "none") }, filepath.Join(root, "none", "drivers")},
		{func(c *options.Config) { c.CandidatesFile = filepath.Join(root, "none.txt") }, filepath.Join(root, "none.txt")},
	} {
		bad := *cfg
		broken.mutate(&bad)
		_, err := SuccessRate(&bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), broken.named)
	}
}
