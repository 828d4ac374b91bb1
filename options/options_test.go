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

package options

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"naive.systems/drivercorpus/corpus"
)

var countDefaults = Config{
	CorpusRoot: "/linux",
	Group:      "file",
	Format:     MD,
	MinCount:   1,
	Output:     "out/drivers_candidates_counts.md",
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	return fs
}

func TestParseDefaultsAndFlags(t *testing.T) {
	cfg, err := Parse(newFlagSet(), []string{"-group", "device", "-ignore_dir", "a/**", "-ignore_dir", "b/**", "in.txt"},
		countDefaults, "corpus_root", "group", "format", "min_count", "output", "ignore_dir")
	require.NoError(t, err)
	assert.Equal(t, "device", cfg.Group)
	assert.Equal(t, "/linux", cfg.CorpusRoot)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, ArrayFlags{"a/**", "b/**"}, cfg.IgnoreDirs)
	policy, err := cfg.GroupPolicy()
	require.NoError(t, err)
	assert.Equal(t, corpus.Device, policy)
}

func TestParseUnregisteredFlag(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-compiler", "gcc"}, countDefaults, "group")
	assert.Error(t, err)
}

func TestConfigFileOverridesDefaultsNotFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	content := `corpus_root: /src/linux
group: subsystem
format: csv
min_count: 3
ignore_dir:
  - drivers/staging/**
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Parse(newFlagSet(), []string{"-config", path, "-format", "tsv"},
		countDefaults, "corpus_root", "group", "format", "min_count", "ignore_dir")
	require.NoError(t, err)
	assert.Equal(t, "/src/linux", cfg.CorpusRoot)
	assert.Equal(t, "subsystem", cfg.Group)
	assert.Equal(t, "tsv", cfg.Format)
	assert.Equal(t, 3, cfg.MinCount)
	assert.Equal(t, ArrayFlags{"drivers/staging/**"}, cfg.IgnoreDirs)
	assert.Equal(t, path, cfg.ConfigFile)

	cfg, err = Parse(newFlagSet(), []string{"-ignore_dir", "sound/**", "-config", path},
		countDefaults, "corpus_root", "group", "format", "min_count", "ignore_dir")
	require.NoError(t, err)
	assert.Equal(t, ArrayFlags{"sound/**"}, cfg.IgnoreDirs)
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")
	_, err := Parse(newFlagSet(), []string{"-config", missing}, countDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("no_such_key: 1\n"), 0644))
	_, err = Parse(newFlagSet(), []string{"-config", unknown}, countDefaults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), unknown)
}

func TestValidate(t *testing.T) {
	for _, testCase := range [...]struct {
		name    string
		mutate  func(c *Config)
		formats []string
		err     error
		fails   bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, formats: TableFormats},
		{name: "txt not offered", mutate: func(c *Config) { c.Format = TXT }, formats: TableFormats, err: ErrInvalidFormat},
		{name: "txt offered", mutate: func(c *Config) { c.Format = TXT }, formats: append([]string{TXT}, TableFormats...)},
		{name: "negative min count", mutate: func(c *Config) { c.MinCount = -1 }, formats: TableFormats, fails: true},
		{name: "unknown lang", mutate: func(c *Config) { c.Lang = "de" }, fails: true},
		{name: "bad pattern", mutate: func(c *Config) { c.IgnoreDirs = ArrayFlags{"[**"} }, fails: true},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := countDefaults
			cfg.Lang = "en"
			testCase.mutate(&cfg)
			err := cfg.Validate(testCase.formats...)
			switch {
			case testCase.err != nil:
				if !errors.Is(err, testCase.err) {
					t.Errorf("expected %v, got %v", testCase.err, err)
				}
			case testCase.fails:
				if err == nil {
					t.Errorf("expected an error")
				}
			case err != nil:
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGroupPolicyInvalid(t *testing.T) {
	cfg := Config{Group: "vendor"}
	if _, err := cfg.GroupPolicy(); !errors.Is(err, corpus.ErrInvalidGroupPolicy) {
		t.Errorf("expected ErrInvalidGroupPolicy, got %v", err)
	}
}
