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
	"naive.systems/drivercorpus/i18n"
	"naive.systems/drivercorpus/normalize"
	"naive.systems/drivercorpus/options"
	"naive.systems/drivercorpus/report"
)

// Reads build output on stdin, e.g. make V=1 2>&1 | kbuild_cmd_extract ...
func main() {
	cfg, err := options.Parse(flag.CommandLine, os.Args[1:], options.Config{
		Compiler: "clang",
		Output:   report.Stdout,
	}, "source_root", "target_dir", "compiler", "output", "ignore_dir")
	defer glog.Flush()
	if err != nil {
		glog.Exitf("options.Parse: %v", err)
	}
	if cfg.SourceRoot == "" || cfg.TargetDir == "" {
		fmt.Fprintln(os.Stderr, "both -source_root and -target_dir are required")
		flag.Usage()
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		glog.Exit(err)
	}

	invocations, stats, err := normalize.ExtractFromLog(os.Stdin, cfg.SourceRoot, cfg.TargetDir, cfg.Compiler)
	if err != nil {
		glog.Exit(err)
	}
	invocations, err = normalize.WithoutIgnored(invocations, cfg.TargetDir, cfg.IgnoreDirs)
	if err != nil {
		glog.Exit(err)
	}
	err = report.Emit(cfg.Output, func(w io.Writer) error {
		return report.WriteInvocations(w, invocations)
	})
	if err != nil {
		glog.Exitf("writing %s: %v", cfg.Output, err)
	}
	fmt.Fprintln(os.Stderr, i18n.Normalized(cfg.Lang, stats.Accepted, stats.OutOfScope, stats.Unusable))
}
