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

package report

import (
	"io"
	"strconv"

	"naive.systems/drivercorpus/aggregate"
	"naive.systems/drivercorpus/options"
)

func OverallTable(r aggregate.SuccessReport) Table {
	return Table{
		Headers: []string{"total_device_dirs", "complete_dirs", "completion_rate", "total_files", "success_files", "file_success_rate"},
		Rows: [][]string{{
			strconv.Itoa(r.TotalDirs),
			strconv.Itoa(r.CompleteDirs),
			formatRate(r.CompletionRate()),
			strconv.Itoa(r.TotalFiles),
			strconv.Itoa(r.SuccessFiles),
			formatRate(r.FileSuccessRate()),
		}},
	}
}

func ByDirTable(r aggregate.SuccessReport) Table {
	t := Table{Headers: []string{"device_dir", "total_files", "success_files", "success_rate"}, Rows: [][]string{}}
	for _, stats := range r.ByDir {
		t.Rows = append(t.Rows, []string{stats.Dir, strconv.Itoa(stats.Total), strconv.Itoa(stats.Success), formatRate(stats.Rate())})
	}
	return t
}

// WriteSuccessReport writes the overall table followed by the per directory
// table. Markdown gets section headings; delimited formats only a blank line
// between the two tables.
func WriteSuccessReport(w io.Writer, r aggregate.SuccessReport, format string) error {
	markdown := format == options.MD
	if markdown {
		if _, err := io.WriteString(w, "## Overall\n\n"); err != nil {
			return err
		}
	}
	if err := WriteTable(w, OverallTable(r), format); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if markdown {
		if _, err := io.WriteString(w, "## By Device\n\n"); err != nil {
			return err
		}
	}
	return WriteTable(w, ByDirTable(r), format)
}
