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
	"naive.systems/drivercorpus/i18n"
	"naive.systems/drivercorpus/options"
	"naive.systems/drivercorpus/report"
)

func main() {
	cfg, err := options.Parse(flag.CommandLine, os.Args[1:], options.Config{
		ArtifactRoot: "pp/driver_out",
		TargetSubdir: "drivers",
		Format:       options.MD,
		Output:       "out/driver_ir_success_rate.md",
	}, "corpus_root", "artifact_root", "target_subdir", "candidates_file", "format", "output", "ignore_dir")
	defer glog.Flush()
	if err != nil {
		glog.Exitf("options.Parse: %v", err)
	}
	if err := cfg.Validate(options.TableFormats...); err != nil {
		glog.Exit(err)
	}

	result, err := aggregate.SuccessRate(cfg)
	if err != nil {
		glog.Exit(err)
	}
	err = report.Emit(cfg.Output, func(w io.Writer) error {
		return report.WriteSuccessReport(w, result, cfg.Format)
	})
	if err != nil {
		glog.Exitf("writing %s: %v", cfg.Output, err)
	}
	fmt.Fprintln(os.Stderr, i18n.Success(cfg.Lang, result.CompleteDirs, result.TotalDirs, result.SuccessFiles, result.TotalFiles))
}
