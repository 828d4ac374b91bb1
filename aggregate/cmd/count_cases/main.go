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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"naive.systems/drivercorpus/aggregate"
	"naive.systems/drivercorpus/corpus"
	"naive.systems/drivercorpus/extract"
	"naive.systems/drivercorpus/i18n"
	"naive.systems/drivercorpus/options"
	"naive.systems/drivercorpus/report"
)

func main() {
	cfg, err := options.Parse(flag.CommandLine, os.Args[1:], options.Config{
		CandidatesFile: "out/drivers_candidates.txt",
		Group:          corpus.File.String(),
		Format:         options.MD,
		MinCount:       1,
		Output:         "out/drivers_candidates_counts.md",
	}, "corpus_root", "candidates_file", "group", "format", "min_count", "output", "ignore_dir")
	defer glog.Flush()
	if err != nil {
		glog.Exitf("options.Parse: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.CandidatesFile = flag.Arg(0)
	}
	if err := cfg.Validate(options.TableFormats...); err != nil {
		glog.Exit(err)
	}
	policy, err := cfg.GroupPolicy()
	if err != nil {
		glog.Exit(err)
	}

	records, err := extract.ReadCandidatesFile(cfg.CandidatesFile)
	if err != nil {
		glog.Exit(err)
	}
	paths, err := corpus.WithoutIgnored(extract.Paths(records, cfg.CorpusRoot), cfg.IgnoreDirs)
	if err != nil {
		glog.Exit(err)
	}
	rows, err := aggregate.Count(paths, policy, cfg.MinCount)
	if err != nil {
		glog.Exit(err)
	}
	err = report.Emit(cfg.Output, func(w io.Writer) error {
		return report.WriteTable(w, report.CountTable(rows, policy), cfg.Format)
	})
	if err != nil {
		glog.Exitf("writing %s: %v", cfg.Output, err)
	}
	glog.Infof("wrote %d rows to %s", len(rows), cfg.Output)
	fmt.Fprintln(os.Stderr, i18n.Counted(cfg.Lang, len(paths), len(rows)))
}
