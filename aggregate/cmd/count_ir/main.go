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

// Besides the group policies, the IR report can list every file or only
// count them.
const (
	groupList  = "list"
	groupTotal = "total"
)

func main() {
	cfg, err := options.Parse(flag.CommandLine, os.Args[1:], options.Config{
		ArtifactRoot: "pp/driver_out/drivers",
		StripRoot:    "pp/driver_out",
		Group:        groupList,
		Format:       options.MD,
		MinCount:     1,
		Output:       "out/driver_ir_counts.md",
	}, "artifact_root", "strip_root", "group", "format", "min_count", "output", "ignore_dir")
	defer glog.Flush()
	if err != nil {
		glog.Exitf("options.Parse: %v", err)
	}
	if err := cfg.Validate(options.TableFormats...); err != nil {
		glog.Exit(err)
	}

	var records []extract.ArtifactRecord
	for _, record := range extract.Artifacts(cfg.ArtifactRoot, cfg.StripRoot) {
		ignored, err := corpus.MatchIgnorePatterns(cfg.IgnoreDirs, record.Path)
		if err != nil {
			glog.Exit(err)
		}
		if !ignored {
			records = append(records, record)
		}
	}

	var table report.Table
	groups := 0
	switch cfg.Group {
	case groupList:
		rows := aggregate.ListArtifacts(records)
		table, groups = report.ListTable(rows), len(rows)
	case groupTotal:
		table, groups = report.TotalTable(len(records)), 1
	default:
		policy, err := cfg.GroupPolicy()
		if err != nil {
			glog.Exitf("%v (or %s, %s)", err, groupList, groupTotal)
		}
		rows, err := aggregate.CountArtifacts(records, policy, cfg.MinCount)
		if err != nil {
			glog.Exit(err)
		}
		table, groups = report.CountTable(rows, policy), len(rows)
	}

	err = report.Emit(cfg.Output, func(w io.Writer) error {
		return report.WriteTable(w, table, cfg.Format)
	})
	if err != nil {
		glog.Exitf("writing %s: %v", cfg.Output, err)
	}
	fmt.Fprintln(os.Stderr, i18n.IRFiles(cfg.Lang, len(records), groups))
}
