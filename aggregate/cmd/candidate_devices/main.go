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
	"naive.systems/drivercorpus/extract"
	"naive.systems/drivercorpus/i18n"
	"naive.systems/drivercorpus/options"
	"naive.systems/drivercorpus/report"
)

func main() {
	cfg, err := options.Parse(flag.CommandLine, os.Args[1:], options.Config{
		CandidatesFile: "out/drivers_candidates.txt",
		Format:         options.MD,
		Output:         "out/candidate_devices.md",
	}, "corpus_root", "candidates_file", "format", "output", "count_lines")
	defer glog.Flush()
	if err != nil {
		glog.Exitf("options.Parse: %v", err)
	}
	if flag.NArg() > 0 {
		cfg.CandidatesFile = flag.Arg(0)
	}
	if err := cfg.Validate(append([]string{options.TXT}, options.TableFormats...)...); err != nil {
		glog.Exit(err)
	}

	records, err := extract.ReadCandidatesFile(cfg.CandidatesFile)
	if err != nil {
		glog.Exit(err)
	}
	rows, err := aggregate.CandidateDevices(records, cfg.CorpusRoot, cfg.CountLines)
	if err != nil {
		glog.Exit(err)
	}
	err = report.Emit(cfg.Output, func(w io.Writer) error {
		return report.WriteTable(w, report.DeviceTable(rows, cfg.CountLines), cfg.Format)
	})
	if err != nil {
		glog.Exitf("writing %s: %v", cfg.Output, err)
	}
	dirs := 0
	for _, row := range rows {
		dirs += len(row.Dirs)
	}
	fmt.Fprintln(os.Stderr, i18n.Devices(cfg.Lang, len(rows), dirs))
}
