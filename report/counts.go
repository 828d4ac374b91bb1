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
	"fmt"
	"strconv"

	"naive.systems/drivercorpus/aggregate"
	"naive.systems/drivercorpus/corpus"
)

// CountTable lays out grouped counts. The file policy reports the context of
// each source, subsystem_device splits its key in two columns.
func CountTable(rows []aggregate.Row, policy corpus.GroupPolicy) Table {
	t := Table{Rows: [][]string{}}
	switch policy {
	case corpus.File:
		t.Headers = []string{"count", "subsystem", "device", "driver"}
		for _, row := range rows {
			t.Rows = append(t.Rows, []string{strconv.Itoa(row.Count), row.Subsystem, row.Device, row.Key})
		}
	case corpus.SubsystemDevice:
		t.Headers = []string{"count", "subsystem", "device"}
		for _, row := range rows {
			t.Rows = append(t.Rows, []string{strconv.Itoa(row.Count), row.Subsystem, row.Device})
		}
	default:
		t.Headers = []string{"count", policy.String()}
		for _, row := range rows {
			t.Rows = append(t.Rows, []string{strconv.Itoa(row.Count), row.Key})
		}
	}
	return t
}

// ListTable has one row per IR file.
func ListTable(rows []aggregate.Row) Table {
	return CountTable(rows, corpus.File)
}

func TotalTable(total int) Table {
	return Table{Headers: []string{"count"}, Rows: [][]string{{strconv.Itoa(total)}}}
}

func DeviceTable(rows []aggregate.DeviceRow, withLines bool) Table {
	t := Table{Headers: []string{"device", "file_count"}, Rows: [][]string{}}
	if withLines {
		t.Headers = append(t.Headers, "code_lines")
	}
	for _, row := range rows {
		cells := []string{row.Device, strconv.Itoa(row.Files)}
		if withLines {
			cells = append(cells, strconv.Itoa(row.CodeLines))
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}
