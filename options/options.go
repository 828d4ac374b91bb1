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
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/i18n"
)

var ErrInvalidFormat = errors.New("invalid output format")

// Formats accepted by the table reports. TXT is only offered by
// candidate_devices.
const (
	MD  = "md"
	CSV = "csv"
	TSV = "tsv"
	TXT = "txt"
)

var TableFormats = []string{MD, CSV, TSV}

// ArrayFlags collects a repeatable string flag.
type ArrayFlags []string

func (i *ArrayFlags) String() string {
	return strings.Join(*i, ",")
}

func (i *ArrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// Config holds every setting of every binary. Each binary registers only the
// flags it reads.
type Config struct {
	CorpusRoot     string     `yaml:"corpus_root"`
	ArtifactRoot   string     `yaml:"artifact_root"`
	StripRoot      string     `yaml:"strip_root"`
	TargetSubdir   string     `yaml:"target_subdir"`
	CandidatesFile string     `yaml:"candidates_file"`
	Group          string     `yaml:"group"`
	Format         string     `yaml:"format"`
	MinCount       int        `yaml:"min_count"`
	Compiler       string     `yaml:"compiler"`
	SourceRoot     string     `yaml:"source_root"`
	TargetDir      string     `yaml:"target_dir"`
	IgnoreDirs     ArrayFlags `yaml:"ignore_dir"`
	Output         string     `yaml:"output"`
	Lang           string     `yaml:"lang"`
	CountLines     bool       `yaml:"count_lines"`

	ConfigFile string `yaml:"-"`
}

type flagDef struct {
	usage string
	bind  func(fs *flag.FlagSet, c *Config, name, usage string)
}

var flagDefs = map[string]flagDef{
	"corpus_root": {"kernel source root stripped from candidate and source paths", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.CorpusRoot, name, c.CorpusRoot, usage)
	}},
	"artifact_root": {"root of the IR output tree", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.ArtifactRoot, name, c.ArtifactRoot, usage)
	}},
	"strip_root": {"prefix removed from IR paths in the report", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.StripRoot, name, c.StripRoot, usage)
	}},
	"target_subdir": {"subtree of corpus_root and artifact_root to compare", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.TargetSubdir, name, c.TargetSubdir, usage)
	}},
	"candidates_file": {"candidate log produced by the analysis pass", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.CandidatesFile, name, c.CandidatesFile, usage)
	}},
	"group": {"grouping key: " + strings.Join(corpus.PolicyNames(), ", "), func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.Group, name, c.Group, usage)
	}},
	"format": {"report format", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.Format, name, c.Format, usage)
	}},
	"min_count": {"minimum count for a row to be reported", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.IntVar(&c.MinCount, name, c.MinCount, usage)
	}},
	"compiler": {"compiler name to look for and to emit", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.Compiler, name, c.Compiler, usage)
	}},
	"source_root": {"directory relative paths in the build log are taken from", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.SourceRoot, name, c.SourceRoot, usage)
	}},
	"target_dir": {"only sources below this directory are kept", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.TargetDir, name, c.TargetDir, usage)
	}},
	"ignore_dir": {"glob of corpus-relative paths to skip (repeatable)", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.Var(&c.IgnoreDirs, name, usage)
	}},
	"output": {"report file, - for stdout", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.Output, name, c.Output, usage)
	}},
	"lang": {"language of the run summary: en, zh", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.Lang, name, c.Lang, usage)
	}},
	"count_lines": {"add a code line column to the device list", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.BoolVar(&c.CountLines, name, c.CountLines, usage)
	}},
	"config": {"YAML file with default values; explicit flags win", func(fs *flag.FlagSet, c *Config, name, usage string) {
		fs.StringVar(&c.ConfigFile, name, c.ConfigFile, usage)
	}},
}

// Parse registers the named flags plus -config and -lang on fs, parses args
// and merges the config file if one was given. Precedence is explicit flag,
// then config file, then the defaults passed in.
func Parse(fs *flag.FlagSet, args []string, defaults Config, names ...string) (*Config, error) {
	cfg := defaults
	cfg.IgnoreDirs = append(ArrayFlags(nil), defaults.IgnoreDirs...)
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	names = append([]string{"config", "lang"}, names...)
	for _, name := range names {
		def, ok := flagDefs[name]
		if !ok {
			return nil, fmt.Errorf("unknown option %s", name)
		}
		def.bind(fs, &cfg, name, def.usage)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		if err := cfg.merge(fs, names); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (c *Config) merge(fs *flag.FlagSet, names []string) error {
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if slices.Contains(names, f.Name) {
			explicit[f.Name] = f.Value.String()
		}
	})
	ignoreDirs := c.IgnoreDirs

	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("config file not found: %s: %v", c.ConfigFile, err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("malformed config file %s: %v", c.ConfigFile, err)
	}

	for name, value := range explicit {
		if name == "ignore_dir" {
			c.IgnoreDirs = ignoreDirs
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) GroupPolicy() (corpus.GroupPolicy, error) {
	return corpus.ParseGroupPolicy(c.Group)
}

// Validate checks the settings every binary shares. formats lists the report
// formats the calling binary can write.
func (c *Config) Validate(formats ...string) error {
	if len(formats) > 0 && !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrInvalidFormat, c.Format, strings.Join(formats, ", "))
	}
	if c.MinCount < 0 {
		return fmt.Errorf("min_count must not be negative: %d", c.MinCount)
	}
	if !i18n.ValidLang(c.Lang) {
		return fmt.Errorf("unsupported lang %q", c.Lang)
	}
	return corpus.ValidatePatterns(c.IgnoreDirs)
}
